package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`              // Primary key
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // Unique login email
	PasswordHash string    `gorm:"not null" json:"-"`                 // Bcrypt hash, never serialized
	Name         string    `json:"name"`                              // Display name
	CreatedAt    time.Time `json:"created_at"`                        // Timestamp of signup
}
