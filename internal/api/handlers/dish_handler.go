package handlers

import (
	"errors"
	"strconv"
	"strings"

	"foodconnect-backend/domain"
	"foodconnect-backend/internal/api/presenters"
	"foodconnect-backend/pkg/dish"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		ListDishes(c *fiber.Ctx) error
		GetDish(c *fiber.Ctx) error
		CreateDish(c *fiber.Ctx) error
		UploadDishPhoto(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func (h *dishHandler) ListDishes(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	q := domain.ListDishesQuery{
		CampusID: c.Query("campus_id"),
		Search:   c.Query("q"),
		Limit:    limit,
		Offset:   offset,
	}
	if tags := c.Query("tags"); tags != "" {
		q.Tags = strings.Split(tags, ",")
	}

	dishes, err := h.dishService.ListDishes(c.Context(), q)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, dishes, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) GetDish(c *fiber.Ctx) error {
	dishID := c.Params("id")

	res, err := h.dishService.GetDishByID(c.Context(), dishID)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDish, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDish)
}

func (h *dishHandler) CreateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.dishService.CreateDish(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *dishHandler) UploadDishPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := &domain.UploadDishPhotoRequest{DishID: c.Params("id")}

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDishPhoto, err)
	}

	res, err := h.dishService.UploadDishPhoto(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadDishPhoto, err)
		}
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUploadDishPhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDishPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadDishPhoto)
}
