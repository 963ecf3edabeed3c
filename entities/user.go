package entities

import (
	"github.com/google/uuid"
)

const (
	RoleConsumer = "consumer"
	RoleCook     = "cook"
	RoleAdmin    = "admin"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	FullName       string     `json:"full_name"`
	HashedPassword string     `json:"-"`
	Role           string     `gorm:"default:consumer" json:"role"` // "consumer", "cook", "admin"
	CampusID       *uuid.UUID `json:"campus_id,omitempty"`
	IsVerified     bool       `gorm:"default:false" json:"is_verified"`

	Campus *Campus `gorm:"foreignKey:CampusID"`
	Timestamp
}
