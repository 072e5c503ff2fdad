package domain

import "time"

// Activity Model
type Activity struct {
	ID          int       `json:"id" gorm:"primaryKey"`        // Primary key
	Type        string    `json:"type" gorm:"not null"`        // Category, e.g. user_registered, payment_processed
	Description string    `json:"description" gorm:"not null"` // Human-readable description
	Icon        string    `json:"icon" gorm:"not null"`        // Symbolic icon name, resolved by the client
	IconColor   string    `json:"iconColor" gorm:"not null"`   // Symbolic color name, resolved by the client
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`   // Timestamp of creation
}

// InsertActivity is the payload for creating an activity
type InsertActivity struct {
	Type        string `json:"type" binding:"required"`        // Category must be provided
	Description string `json:"description" binding:"required"` // Description must be provided
	Icon        string `json:"icon" binding:"required"`        // Icon name must be provided
	IconColor   string `json:"iconColor" binding:"required"`   // Icon color must be provided
}
