package entities

import (
	"time"

	"github.com/google/uuid"
)

// Order lifecycle. Creation always starts at pending; transition endpoints are
// not exposed yet, the table below documents the allowed moves for when they are.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusCancelled = "cancelled"
)

// OrderStatusTransitions maps each status to the statuses reachable from it.
// cancelled is reachable from every non-terminal state.
var OrderStatusTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusPickedUp, OrderStatusCancelled},
	OrderStatusPickedUp:  {},
	OrderStatusCancelled: {},
}

type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BuyerID         uuid.UUID  `gorm:"not null;index" json:"buyer_id"`
	CookID          uuid.UUID  `gorm:"not null;index" json:"cook_id"`
	Status          string     `gorm:"default:pending" json:"status"`
	Total           float64    `gorm:"not null" json:"total"`
	Currency        string     `gorm:"default:USD" json:"currency"`
	ScheduledPickup *time.Time `json:"scheduled_pickup,omitempty"`
	PickupNotes     string     `json:"pickup_notes,omitempty"`
	PickupLocation  string     `json:"pickup_location,omitempty"`

	Buyer *User `gorm:"foreignKey:BuyerID"`
	Cook  *User `gorm:"foreignKey:CookID"`
	Timestamp
}

type OrderItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID             uuid.UUID `gorm:"not null;index" json:"order_id"`
	DishID              uuid.UUID `gorm:"not null" json:"dish_id"`
	Position            int       `gorm:"not null;default:0" json:"position"`
	Quantity            int       `gorm:"not null;default:1" json:"quantity"`
	UnitPrice           float64   `gorm:"not null" json:"unit_price"`
	TotalPrice          float64   `gorm:"not null" json:"total_price"`
	SpecialInstructions string    `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time `gorm:"type:timestamp" json:"created_at"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Dish  *Dish  `gorm:"foreignKey:DishID"`
}
