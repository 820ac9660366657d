package models

import (
	"time"
)

// Booking status values offered by the form.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

type Booking struct {
	ID          uint        `gorm:"primaryKey"`
	CustomerID  uint        `gorm:"index;not null"`
	Customer    Customer    `gorm:"foreignKey:CustomerID;references:ID"`
	PackageID   uint        `gorm:"index;not null"`
	Package     TourPackage `gorm:"foreignKey:PackageID;references:ID"`
	BookingDate string      `gorm:"type:date;not null"`
	Status      string      `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time   `gorm:"not null"`
	UpdatedAt   time.Time   `gorm:"not null"`
}
