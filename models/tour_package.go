package models

import (
	"time"
)

type TourPackage struct {
	ID          uint      `gorm:"primaryKey"`
	TourName    string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Duration    int       `gorm:"not null"` // days
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
