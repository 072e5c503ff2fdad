package domain

import "time"

// Transaction statuses
const (
	StatusCompleted = "completed" // Payment settled
	StatusPending   = "pending"   // Payment in flight
	StatusFailed    = "failed"    // Payment rejected
)

// Transaction Model
type Transaction struct {
	ID             int       `json:"id" gorm:"primaryKey"`                    // Primary key
	CustomerID     int       `json:"customerId" gorm:"not null"`              // Customer reference (not validated against users)
	CustomerName   string    `json:"customerName" gorm:"not null"`            // Customer display name
	CustomerEmail  string    `json:"customerEmail" gorm:"not null"`           // Customer email
	CustomerAvatar *string   `json:"customerAvatar"`                          // Optional customer avatar URL
	Plan           string    `json:"plan" gorm:"not null"`                    // Subscription plan name
	Amount         string    `json:"amount" gorm:"type:decimal(10,2);not null"` // Amount as decimal string
	Status         string    `json:"status" gorm:"not null"`                  // Status: completed, pending or failed
	CreatedAt      time.Time `json:"createdAt" gorm:"not null"`               // Timestamp of creation
}

// InsertTransaction is the payload for creating a transaction
type InsertTransaction struct {
	CustomerID     int     `json:"customerId" binding:"required"`                           // Customer reference must be provided
	CustomerName   string  `json:"customerName" binding:"required"`                         // Customer name must be provided
	CustomerEmail  string  `json:"customerEmail" binding:"required,email"`                  // Customer email must be provided and valid
	CustomerAvatar *string `json:"customerAvatar"`                                          // Optional customer avatar URL
	Plan           string  `json:"plan" binding:"required"`                                 // Plan must be provided
	Amount         string  `json:"amount" binding:"required"`                               // Amount must be provided
	Status         string  `json:"status" binding:"required,oneof=completed pending failed"` // Status must be a known value
}
