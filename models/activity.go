package models

import (
	"time"
)

// Activity is a standalone catalog entry, not linked to any package.
type Activity struct {
	ID           uint      `gorm:"primaryKey"`
	ActivityName string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
