package entities

import (
	"github.com/google/uuid"
)

type Campus struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Address string    `json:"address,omitempty"`

	Timestamp
}
