package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	IngredientsJSON string    `gorm:"type:text;not null;default:'[]'" json:"-"`
	StepsJSON       string    `gorm:"type:text;not null;default:'[]'" json:"-"`
	IsGenerated     bool      `gorm:"default:false" json:"is_generated"`
	CreatedAt       time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
