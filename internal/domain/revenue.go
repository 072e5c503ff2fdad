package domain

import "time"

// RevenueData Model (one entry per calendar day, days are not required unique)
type RevenueData struct {
	ID        int       `json:"id" gorm:"primaryKey"`                    // Primary key
	Date      string    `json:"date" gorm:"not null"`                    // Calendar day in YYYY-MM-DD form
	Revenue   string    `json:"revenue" gorm:"type:decimal(10,2);not null"` // Revenue for the day as decimal string
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`               // Timestamp of creation
}

// InsertRevenueData is the payload for creating a revenue entry
type InsertRevenueData struct {
	Date    string `json:"date" binding:"required,datetime=2006-01-02"` // Day must be provided in YYYY-MM-DD form
	Revenue string `json:"revenue" binding:"required"`                  // Revenue must be provided
}
