package entities

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_rating_user_dish" json:"user_id"`
	DishID    uuid.UUID `gorm:"not null;uniqueIndex:idx_rating_user_dish;index" json:"dish_id"`
	Score     int       `gorm:"not null" json:"score"` // 1-5
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
	Dish *Dish `gorm:"foreignKey:DishID"`
}
