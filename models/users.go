package models

import (
	"time"
)

// User is a back-office login account. The panel runs with a single
// seeded admin user; the table exists so the credentials live hashed in
// the store instead of in source.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt hash
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
