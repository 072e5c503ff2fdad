package domain

import "time"

// DashboardMetrics Model (singleton — at most one live record)
type DashboardMetrics struct {
	ID               int       `json:"id" gorm:"primaryKey"`                           // Primary key
	Revenue          string    `json:"revenue" gorm:"type:decimal(12,2);not null"`     // Total revenue as decimal string
	Users            int       `json:"users" gorm:"not null"`                          // Active user count
	ConversionRate   string    `json:"conversionRate" gorm:"type:decimal(5,2);not null"` // Conversion rate percentage
	GrowthRate       string    `json:"growthRate" gorm:"type:decimal(5,2);not null"`   // Growth rate percentage
	RevenueChange    string    `json:"revenueChange" gorm:"type:decimal(5,2);not null"` // Revenue change percentage
	UsersChange      string    `json:"usersChange" gorm:"type:decimal(5,2);not null"`  // User count change percentage
	ConversionChange string    `json:"conversionChange" gorm:"type:decimal(5,2);not null"` // Conversion change percentage
	GrowthChange     string    `json:"growthChange" gorm:"type:decimal(5,2);not null"` // Growth change percentage
	UpdatedAt        time.Time `json:"updatedAt" gorm:"not null"`                      // Refreshed on every write
}

// InsertDashboardMetrics is the payload for replacing the metrics record wholesale
type InsertDashboardMetrics struct {
	Revenue          string `json:"revenue" binding:"required"`          // Total revenue must be provided
	Users            int    `json:"users" binding:"required"`            // User count must be provided
	ConversionRate   string `json:"conversionRate" binding:"required"`   // Conversion rate must be provided
	GrowthRate       string `json:"growthRate" binding:"required"`       // Growth rate must be provided
	RevenueChange    string `json:"revenueChange" binding:"required"`    // Revenue change must be provided
	UsersChange      string `json:"usersChange" binding:"required"`      // Users change must be provided
	ConversionChange string `json:"conversionChange" binding:"required"` // Conversion change must be provided
	GrowthChange     string `json:"growthChange" binding:"required"`     // Growth change must be provided
}
