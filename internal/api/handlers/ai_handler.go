package handlers

import (
	"foodconnect-backend/domain"
	"foodconnect-backend/internal/api/presenters"
	"foodconnect-backend/pkg/ai"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		SuggestTags(c *fiber.Ctx) error
	}

	aiHandler struct {
		suggester ai.Suggester
		validator *validator.Validate
	}
)

func NewAIHandler(suggester ai.Suggester, validator *validator.Validate) AIHandler {
	return &aiHandler{
		suggester: suggester,
		validator: validator,
	}
}

func (h *aiHandler) SuggestTags(c *fiber.Ctx) error {
	req := new(domain.SuggestTagsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestTags, err)
	}

	tags, err := h.suggester.SuggestTags(c.Context(), req.Text, req.MaxTags)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSuggestTags, domain.ErrAIUpstreamFailed)
	}

	return presenters.SuccessResponse(c, domain.SuggestTagsResponse{Tags: tags}, fiber.StatusOK, domain.MessageSuccessSuggestTags)
}
