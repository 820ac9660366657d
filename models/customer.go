package models

import (
	"time"
)

// Gender is stored as the single-character code, not the display label.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

type Customer struct {
	ID           uint      `gorm:"primaryKey"`
	CustomerName string    `gorm:"type:varchar(100);not null"`
	Nationality  string    `gorm:"type:varchar(50);not null"`
	ContactNo    string    `gorm:"type:varchar(20);not null"`
	Email        string    `gorm:"type:varchar(100);not null"`
	Gender       string    `gorm:"type:char(1);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// GenderLabel maps the stored code back to the label shown in lists.
func (c Customer) GenderLabel() string {
	switch c.Gender {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return c.Gender
}
