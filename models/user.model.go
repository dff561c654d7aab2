package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"unique;not null" json:"email"`
	Phone        string `gorm:"unique;not null" json:"phone"`
	PasswordHash string `gorm:"not null" json:"-"`
}
