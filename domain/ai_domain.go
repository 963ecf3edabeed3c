package domain

import "errors"

var (
	MessageSuccessSuggestTags = "tags suggested successfully"
	MessageFailedSuggestTags  = "failed to suggest tags"

	ErrAIUpstreamFailed = errors.New("ai upstream request failed")
)

type (
	SuggestTagsRequest struct {
		Text    string `json:"text" validate:"required"`
		MaxTags int    `json:"max_tags,omitempty" validate:"omitempty,min=1,max=20"`
	}

	SuggestTagsResponse struct {
		Tags []string `json:"tags"`
	}
)
