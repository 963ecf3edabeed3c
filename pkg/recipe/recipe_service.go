package recipe

import (
	"context"
	"encoding/json"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/ai"

	"github.com/google/uuid"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetMyRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		RecipeFromPantry(ctx context.Context, req domain.PantryRecipeRequest, userID string) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		suggester        ai.Suggester
	}
)

func NewRecipeService(recipeRepository RecipeRepository, suggester ai.Suggester) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		suggester:        suggester,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := []string{}
	steps := []string{}
	_ = json.Unmarshal([]byte(recipe.IngredientsJSON), &ingredients)
	_ = json.Unmarshal([]byte(recipe.StepsJSON), &steps)

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		UserID:      recipe.UserID.String(),
		Title:       recipe.Title,
		Description: recipe.Description,
		Ingredients: ingredients,
		Steps:       steps,
		IsGenerated: recipe.IsGenerated,
		CreatedAt:   recipe.CreatedAt,
	}
}

func (s *recipeService) createForUser(ctx context.Context, userID, title, description string, ingredients, steps []string, generated bool) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	ingredientsJSON, err := json.Marshal(ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           title,
		Description:     description,
		IngredientsJSON: string(ingredientsJSON),
		StepsJSON:       string(stepsJSON),
		IsGenerated:     generated,
	}
	if err := s.recipeRepository.Create(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	steps := req.Steps
	if steps == nil {
		steps = []string{}
	}
	return s.createForUser(ctx, userID, req.Title, req.Description, ingredients, steps, false)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, nil
}

// RecipeFromPantry asks the AI collaborator for a recipe built from pantry
// images and items, then persists it so it shows up in the caller's recipes.
func (s *recipeService) RecipeFromPantry(ctx context.Context, req domain.PantryRecipeRequest, userID string) (domain.RecipeResponse, error) {
	proposed, err := s.suggester.RecipeFromPantry(ctx, req.ImagesBase64, req.PantryItems)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrAIUpstreamFailed
	}

	return s.createForUser(ctx, userID, proposed.Title, "", proposed.Ingredients, proposed.Steps, true)
}
