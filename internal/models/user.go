package model

import (
	"time"

	"github.com/present-lee/module-6/internal/constants"
)

type User struct {
	ID           string             `gorm:"primaryKey;size:36" json:"id"`
	Username     string             `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string             `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string             `gorm:"size:255;not null" json:"-"`
	Role         constants.UserRole `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time          `json:"created_at"`
}
