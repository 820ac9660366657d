package models

import (
	"time"
)

type Feedback struct {
	ID         uint        `gorm:"primaryKey"`
	CustomerID uint        `gorm:"index;not null"`
	Customer   Customer    `gorm:"foreignKey:CustomerID;references:ID"`
	PackageID  uint        `gorm:"index;not null"`
	Package    TourPackage `gorm:"foreignKey:PackageID;references:ID"`
	Rating     int         `gorm:"not null"` // 1..5
	Comments   string      `gorm:"type:text;not null"`
	CreatedAt  time.Time   `gorm:"not null"`
	UpdatedAt  time.Time   `gorm:"not null"`
}

// TableName keeps the table singular, matching the schema.
func (Feedback) TableName() string {
	return "feedback"
}
