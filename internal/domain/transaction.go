package domain

import "time"

// StatusCompleted is the only status a transaction ever carries; every
// persisted payment has already settled.
const StatusCompleted = "completed"

// Transaction Model
type Transaction struct {
	ID           string    `gorm:"primaryKey;size:50" json:"id"`            // TX-<timestamp>-<suffix>
	UserID       uint      `gorm:"index;not null" json:"user_id"`           // Foreign key to the owning User
	Date         time.Time `json:"date"`                                    // Timestamp of creation
	Amount       float64   `gorm:"not null" json:"amount"`                  // Payment amount
	CardLastFour string    `gorm:"size:4;not null" json:"card_last_four"`   // Last four digits of the card
	Cardholder   string    `gorm:"size:100;not null" json:"cardholder"`     // Cardholder name as submitted
	Status       string    `gorm:"size:20;default:completed" json:"status"` // Settlement status
}
