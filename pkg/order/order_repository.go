package order

import (
	"context"

	"foodconnect-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		Create(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		GetByID(ctx context.Context, id string) (*entities.Order, error)
		GetItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error)
		List(ctx context.Context, userID string, asCook bool, status string, limit, offset int) ([]*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header and its line items atomically; a failed
// item insert rolls back the header so no partial order is ever visible.
func (r *orderRepository) Create(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetItems(ctx context.Context, orderID uuid.UUID) ([]*entities.OrderItem, error) {
	var items []*entities.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) List(ctx context.Context, userID string, asCook bool, status string, limit, offset int) ([]*entities.Order, error) {
	query := r.db.WithContext(ctx)
	if asCook {
		query = query.Where("cook_id = ?", userID)
	} else {
		query = query.Where("buyer_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []*entities.Order
	if err := query.Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
