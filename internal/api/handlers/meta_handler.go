package handlers

import (
	"foodconnect-backend/domain"
	"foodconnect-backend/internal/api/presenters"
	"foodconnect-backend/pkg/campus"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MetaHandler interface {
		GetCampuses(c *fiber.Ctx) error
		CreateCampus(c *fiber.Ctx) error
		GetTags(c *fiber.Ctx) error
	}

	metaHandler struct {
		campusService campus.CampusService
		validator     *validator.Validate
	}
)

func NewMetaHandler(campusService campus.CampusService, validator *validator.Validate) MetaHandler {
	return &metaHandler{
		campusService: campusService,
		validator:     validator,
	}
}

func (h *metaHandler) GetCampuses(c *fiber.Ctx) error {
	res, err := h.campusService.GetCampuses(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCampuses, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCampuses)
}

func (h *metaHandler) CreateCampus(c *fiber.Ctx) error {
	req := new(domain.CreateCampusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCampus, err)
	}

	res, err := h.campusService.CreateCampus(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCampus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCampus)
}

func (h *metaHandler) GetTags(c *fiber.Ctx) error {
	res, err := h.campusService.GetTags(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTags)
}
