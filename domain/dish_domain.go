package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDish      = "dish created successfully"
	MessageSuccessGetDishes       = "dishes retrieved successfully"
	MessageSuccessGetDish         = "dish retrieved successfully"
	MessageSuccessUploadDishPhoto = "dish photo uploaded successfully"

	MessageFailedCreateDish      = "failed to create dish"
	MessageFailedGetDishes       = "failed to retrieve dishes"
	MessageFailedGetDish         = "failed to retrieve dish"
	MessageFailedUploadDishPhoto = "failed to upload dish photo"

	ErrDishNotFound = errors.New("dish not found")
)

type (
	ListDishesQuery struct {
		CampusID string
		Search   string
		Tags     []string
		Limit    int
		Offset   int
	}

	DishImageRequest struct {
		URL       string `json:"url" validate:"required,url"`
		SortOrder *int   `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	}

	CreateDishRequest struct {
		Title             string             `json:"title" validate:"required"`
		Description       string             `json:"description" validate:"omitempty"`
		Price             float64            `json:"price" validate:"gte=0"`
		Currency          string             `json:"currency" validate:"omitempty,len=3"`
		IsAvailable       *bool              `json:"is_available,omitempty"`
		QuantityAvailable *int               `json:"quantity_available,omitempty" validate:"omitempty,min=0"`
		PrepTimeMinutes   *int               `json:"prep_time_minutes,omitempty" validate:"omitempty,min=0"`
		PickupLocation    string             `json:"pickup_location,omitempty"`
		CampusID          string             `json:"campus_id,omitempty" validate:"omitempty,uuid"`
		Images            []DishImageRequest `json:"images" validate:"omitempty,dive"`
		Tags              []string           `json:"tags" validate:"omitempty,dive,required"`
	}

	UploadDishPhotoRequest struct {
		DishID string                `json:"dish_id" form:"dish_id" validate:"required,uuid"`
		Photo  *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	DishImageResponse struct {
		URL       string `json:"url"`
		SortOrder int    `json:"sort_order"`
	}

	DishResponse struct {
		ID                string              `json:"id"`
		CookID            string              `json:"cook_id"`
		Title             string              `json:"title"`
		Description       string              `json:"description,omitempty"`
		Price             float64             `json:"price"`
		Currency          string              `json:"currency"`
		IsAvailable       bool                `json:"is_available"`
		QuantityAvailable *int                `json:"quantity_available,omitempty"`
		PrepTimeMinutes   *int                `json:"prep_time_minutes,omitempty"`
		PickupLocation    string              `json:"pickup_location,omitempty"`
		CampusID          string              `json:"campus_id,omitempty"`
		Images            []DishImageResponse `json:"images"`
		Tags              []string            `json:"tags"`
		RatingAverage     float64             `json:"rating_average"`
		RatingCount       int64               `json:"rating_count"`
		CreatedAt         time.Time           `json:"created_at"`
	}
)
