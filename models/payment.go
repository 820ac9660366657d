package models

import (
	"time"
)

// Payment method values offered by the form.
const (
	PaymentCreditCard   = "Credit Card"
	PaymentDebitCard    = "Debit Card"
	PaymentBankTransfer = "Bank Transfer"
	PaymentCash         = "Cash"
)

// Payment is a settlement recorded against a booking.
type Payment struct {
	ID            uint      `gorm:"primaryKey"`
	BookingID     uint      `gorm:"index;not null"`
	Booking       Booking   `gorm:"foreignKey:BookingID;references:ID"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	PaymentDate   string    `gorm:"type:date;not null"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}
