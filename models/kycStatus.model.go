package models

import (
	"gorm.io/gorm"
)

// KycStatus is the per-user coarse lifecycle indicator. At most one row per
// user; KycID tracks the most recent case id as a string.
type KycStatus struct {
	gorm.Model
	UserID uint   `gorm:"index" json:"user_id"`
	Status string `gorm:"default:'pending'" json:"status"` // pending, submitted, approved, rejected
	KycID  string `gorm:"index" json:"kyc_id"`
}
