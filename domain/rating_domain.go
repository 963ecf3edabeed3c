package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRating = "rating created successfully"
	MessageSuccessGetRatings   = "ratings retrieved successfully"

	MessageFailedCreateRating = "failed to create rating"
	MessageFailedGetRatings   = "failed to retrieve ratings"

	ErrAlreadyRated = errors.New("already rated")
)

type (
	CreateRatingRequest struct {
		DishID  string `json:"dish_id" validate:"required,uuid"`
		Score   int    `json:"score" validate:"required,min=1,max=5"`
		Comment string `json:"comment,omitempty"`
	}

	RatingResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		DishID    string    `json:"dish_id"`
		Score     int       `json:"score"`
		Comment   string    `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
