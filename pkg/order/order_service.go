package order

import (
	"context"
	"errors"

	"foodconnect-backend/domain"
	"foodconnect-backend/entities"
	"foodconnect-backend/pkg/dish"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, buyerID string) (domain.OrderResponse, error)
		ListOrders(ctx context.Context, userID string, q domain.ListOrdersQuery) ([]domain.OrderResponse, error)
		GetOrderByID(ctx context.Context, id string, userID string, role string) (domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		dishRepository  dish.DishRepository
	}
)

func NewOrderService(orderRepository OrderRepository, dishRepository dish.DishRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		dishRepository:  dishRepository,
	}
}

// CanTransition reports whether an order may move from one status to another.
// No endpoint drives these transitions yet; the table exists so that one can.
func CanTransition(from, to string) bool {
	for _, next := range entities.OrderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, buyerID string) (domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyOrder
	}

	buyerUUID, err := uuid.Parse(buyerID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	firstDish, err := s.dishRepository.GetByID(ctx, req.Items[0].DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrDishNotFound
		}
		return domain.OrderResponse{}, err
	}

	// The first item's dish fixes the order's cook; mixed-cook carts are
	// rejected rather than silently attributed to the first cook.
	order := &entities.Order{
		ID:              uuid.New(),
		BuyerID:         buyerUUID,
		CookID:          firstDish.CookID,
		Status:          entities.OrderStatusPending,
		Currency:        req.Currency,
		ScheduledPickup: req.ScheduledPickup,
		PickupNotes:     req.PickupNotes,
		PickupLocation:  req.PickupLocation,
	}
	if order.Currency == "" {
		order.Currency = firstDish.Currency
	}
	if order.PickupLocation == "" {
		order.PickupLocation = firstDish.PickupLocation
	}

	items := make([]*entities.OrderItem, 0, len(req.Items))
	total := 0.0
	for i, line := range req.Items {
		d, err := s.dishRepository.GetByID(ctx, line.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.OrderResponse{}, domain.ErrDishNotFound
			}
			return domain.OrderResponse{}, err
		}
		if d.CookID != firstDish.CookID {
			return domain.OrderResponse{}, domain.ErrMixedCookOrder
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		// Snapshot the current price; later dish price changes must not
		// retroactively alter this order.
		unitPrice := d.Price
		lineTotal := float64(quantity) * unitPrice
		total += lineTotal

		items = append(items, &entities.OrderItem{
			ID:                  uuid.New(),
			DishID:              d.ID,
			Position:            i,
			Quantity:            quantity,
			UnitPrice:           unitPrice,
			TotalPrice:          lineTotal,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	order.Total = total

	if err := s.orderRepository.Create(ctx, order, items); err != nil {
		return domain.OrderResponse{}, err
	}

	return s.GetOrderByID(ctx, order.ID.String(), buyerID, "")
}

func (s *orderService) ListOrders(ctx context.Context, userID string, q domain.ListOrdersQuery) ([]domain.OrderResponse, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	orders, err := s.orderRepository.List(ctx, userID, q.As == "cook", q.Status, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res, err := s.buildResponse(ctx, o)
		if err != nil {
			return nil, err
		}
		response = append(response, res)
	}
	return response, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string, userID string, role string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	// Only the buyer, the cook, or an admin may read an order. Outsiders get
	// not-found so the identifier's existence is not confirmed.
	if order.BuyerID.String() != userID && order.CookID.String() != userID && role != entities.RoleAdmin {
		return domain.OrderResponse{}, domain.ErrOrderNotFound
	}

	return s.buildResponse(ctx, order)
}

func (s *orderService) buildResponse(ctx context.Context, order *entities.Order) (domain.OrderResponse, error) {
	items, err := s.orderRepository.GetItems(ctx, order.ID)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	itemResponses := make([]domain.OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, domain.OrderItemResponse{
			ID:                  item.ID.String(),
			DishID:              item.DishID.String(),
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			TotalPrice:          item.TotalPrice,
			SpecialInstructions: item.SpecialInstructions,
			CreatedAt:           item.CreatedAt,
		})
	}

	return domain.OrderResponse{
		ID:              order.ID.String(),
		BuyerID:         order.BuyerID.String(),
		CookID:          order.CookID.String(),
		Status:          order.Status,
		Total:           order.Total,
		Currency:        order.Currency,
		ScheduledPickup: order.ScheduledPickup,
		PickupNotes:     order.PickupNotes,
		PickupLocation:  order.PickupLocation,
		Items:           itemResponses,
		CreatedAt:       order.CreatedAt,
	}, nil
}
