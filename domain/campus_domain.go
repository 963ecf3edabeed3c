package domain

import "time"

var (
	MessageSuccessGetCampuses  = "campuses retrieved successfully"
	MessageSuccessCreateCampus = "campus created successfully"
	MessageSuccessGetTags      = "tags retrieved successfully"

	MessageFailedGetCampuses  = "failed to retrieve campuses"
	MessageFailedCreateCampus = "failed to create campus"
	MessageFailedGetTags      = "failed to retrieve tags"
)

type (
	CreateCampusRequest struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address,omitempty"`
	}

	CampusResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Address   string    `json:"address,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
