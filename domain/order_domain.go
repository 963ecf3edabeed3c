package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder = "order created successfully"
	MessageSuccessGetOrders   = "orders retrieved successfully"
	MessageSuccessGetOrder    = "order retrieved successfully"

	MessageFailedCreateOrder = "failed to create order"
	MessageFailedGetOrders   = "failed to retrieve orders"
	MessageFailedGetOrder    = "failed to retrieve order"

	ErrOrderNotFound  = errors.New("order not found")
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrMixedCookOrder = errors.New("all order items must belong to the same cook")
)

type (
	OrderItemRequest struct {
		DishID              string `json:"dish_id" validate:"required,uuid"`
		Quantity            int    `json:"quantity" validate:"omitempty,min=0"`
		SpecialInstructions string `json:"special_instructions,omitempty"`
	}

	CreateOrderRequest struct {
		Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
		Currency        string             `json:"currency" validate:"omitempty,len=3"`
		ScheduledPickup *time.Time         `json:"scheduled_pickup,omitempty"`
		PickupNotes     string             `json:"pickup_notes,omitempty"`
		PickupLocation  string             `json:"pickup_location,omitempty"`
	}

	ListOrdersQuery struct {
		As     string `validate:"omitempty,oneof=buyer cook"`
		Status string `validate:"omitempty,oneof=pending confirmed preparing ready picked_up cancelled"`
		Limit  int
		Offset int
	}

	OrderItemResponse struct {
		ID                  string    `json:"id"`
		DishID              string    `json:"dish_id"`
		Quantity            int       `json:"quantity"`
		UnitPrice           float64   `json:"unit_price"`
		TotalPrice          float64   `json:"total_price"`
		SpecialInstructions string    `json:"special_instructions,omitempty"`
		CreatedAt           time.Time `json:"created_at"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		BuyerID         string              `json:"buyer_id"`
		CookID          string              `json:"cook_id"`
		Status          string              `json:"status"`
		Total           float64             `json:"total"`
		Currency        string              `json:"currency"`
		ScheduledPickup *time.Time          `json:"scheduled_pickup,omitempty"`
		PickupNotes     string              `json:"pickup_notes,omitempty"`
		PickupLocation  string              `json:"pickup_location,omitempty"`
		Items           []OrderItemResponse `json:"items"`
		CreatedAt       time.Time           `json:"created_at"`
	}
)
