package domain

import "time"

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessPantryRecipe = "recipe generated from pantry"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedPantryRecipe = "failed to generate recipe from pantry"
)

type (
	CreateRecipeRequest struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description,omitempty"`
		Ingredients []string `json:"ingredients" validate:"omitempty,dive,required"`
		Steps       []string `json:"steps" validate:"omitempty,dive,required"`
	}

	PantryRecipeRequest struct {
		ImagesBase64 []string `json:"images" validate:"omitempty,max=6"`
		PantryItems  []string `json:"pantry_items" validate:"omitempty,dive,required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		Ingredients []string  `json:"ingredients"`
		Steps       []string  `json:"steps"`
		IsGenerated bool      `json:"is_generated"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
