package recipe

import (
	"context"
	"errors"
	"testing"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/ai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeRepository struct {
	recipes []*entities.Recipe
}

func (f *fakeRecipeRepository) Create(_ context.Context, recipe *entities.Recipe) error {
	f.recipes = append(f.recipes, recipe)
	return nil
}

func (f *fakeRecipeRepository) ListByUser(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.UserID.String() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSuggester struct {
	recipe ai.PantryRecipe
	err    error
}

func (f *fakeSuggester) SuggestTags(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, f.err
}

func (f *fakeSuggester) RecipeFromPantry(_ context.Context, _ []string, _ []string) (ai.PantryRecipe, error) {
	return f.recipe, f.err
}

func TestCreateRecipeRoundTripsJSONColumns(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := NewRecipeService(repo, &fakeSuggester{})
	userID := uuid.New().String()

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Campus Curry",
		Description: "cheap and filling",
		Ingredients: []string{"rice", "curry paste"},
		Steps:       []string{"cook rice", "add paste"},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Campus Curry", res.Title)
	assert.Equal(t, []string{"rice", "curry paste"}, res.Ingredients)
	assert.Equal(t, []string{"cook rice", "add paste"}, res.Steps)
	assert.False(t, res.IsGenerated)

	mine, err := service.GetMyRecipes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, []string{"rice", "curry paste"}, mine[0].Ingredients)
}

func TestCreateRecipeWithEmptyLists(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{}, &fakeSuggester{})

	res, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Just a Title",
	}, uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, []string{}, res.Ingredients)
	assert.Equal(t, []string{}, res.Steps)
}

func TestGetMyRecipesOnlyReturnsOwn(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := NewRecipeService(repo, &fakeSuggester{})

	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Title: "Mine"}, uuid.New().String())
	require.NoError(t, err)

	other, err := service.GetMyRecipes(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Len(t, other, 0)
}

func TestRecipeFromPantryPersistsGeneratedRecipe(t *testing.T) {
	repo := &fakeRecipeRepository{}
	service := NewRecipeService(repo, &fakeSuggester{
		recipe: ai.PantryRecipe{
			Title:       "Pantry Stir Fry",
			Ingredients: []string{"noodles", "egg"},
			Steps:       []string{"boil", "fry"},
		},
	})
	userID := uuid.New().String()

	res, err := service.RecipeFromPantry(context.Background(), domain.PantryRecipeRequest{
		PantryItems: []string{"noodles", "egg"},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Pantry Stir Fry", res.Title)
	assert.True(t, res.IsGenerated)

	mine, err := service.GetMyRecipes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].IsGenerated)
}

func TestRecipeFromPantryWrapsUpstreamFailure(t *testing.T) {
	service := NewRecipeService(&fakeRecipeRepository{}, &fakeSuggester{err: errors.New("boom")})

	_, err := service.RecipeFromPantry(context.Background(), domain.PantryRecipeRequest{}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrAIUpstreamFailed)
}
