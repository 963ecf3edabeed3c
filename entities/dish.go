package entities

import (
	"time"

	"github.com/google/uuid"
)

type Dish struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CookID            uuid.UUID  `gorm:"not null" json:"cook_id"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `gorm:"type:text" json:"description"`
	Price             float64    `gorm:"not null" json:"price"`
	Currency          string     `gorm:"default:USD" json:"currency"`
	IsAvailable       bool       `gorm:"default:true" json:"is_available"`
	QuantityAvailable *int       `json:"quantity_available,omitempty"`
	PrepTimeMinutes   *int       `json:"prep_time_minutes,omitempty"`
	PickupLocation    string     `json:"pickup_location,omitempty"`
	CampusID          *uuid.UUID `json:"campus_id,omitempty"`

	Cook   *User   `gorm:"foreignKey:CookID"`
	Campus *Campus `gorm:"foreignKey:CampusID"`
	Timestamp
}

type DishImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DishID    uuid.UUID `gorm:"not null;index" json:"dish_id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Dish *Dish `gorm:"foreignKey:DishID"`
}

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`
}

type DishTag struct {
	DishID uuid.UUID `gorm:"type:uuid;primaryKey" json:"dish_id"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`

	Dish *Dish `gorm:"foreignKey:DishID"`
	Tag  *Tag  `gorm:"foreignKey:TagID"`
}
