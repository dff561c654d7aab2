package models

import (
	"gorm.io/gorm"
)

// Case status values: initiated, in_progress, submitted, approved, rejected.
// Monotonic in practice but not enforced by the store.
type KycCase struct {
	gorm.Model
	UserID *uint  `gorm:"index" json:"user_id"` // nil until registration links a user
	Status string `gorm:"default:'initiated'" json:"status"`
}
