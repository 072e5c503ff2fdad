package domain

import "time"

// User roles
const (
	RoleUser    = "user"    // Default role
	RoleManager = "manager" // Manager role
	RoleAdmin   = "admin"   // Admin role
)

// User Model
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`              // Primary key
	Username  string    `json:"username" gorm:"uniqueIndex;not null"` // Unique username
	Password  string    `json:"password" gorm:"not null"`          // Opaque password, stored as given
	Email     string    `json:"email" gorm:"uniqueIndex;not null"` // Unique email
	Name      string    `json:"name" gorm:"not null"`              // Display name
	Role      string    `json:"role" gorm:"not null;default:user"` // Role: user, manager or admin
	Avatar    *string   `json:"avatar"`                            // Optional avatar URL
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`         // Timestamp of creation
}

// InsertUser is the payload for creating a user
type InsertUser struct {
	Username string  `json:"username" binding:"required"`                      // Username must be provided
	Password string  `json:"password" binding:"required"`                      // Password must be provided
	Email    string  `json:"email" binding:"required,email"`                   // Email must be provided and valid
	Name     string  `json:"name" binding:"required"`                          // Name must be provided
	Role     string  `json:"role" binding:"omitempty,oneof=user manager admin"` // Role defaults to user
	Avatar   *string `json:"avatar"`                                           // Optional avatar URL
}

// UpdateUser is the partial payload for patching a user; nil fields are left untouched
type UpdateUser struct {
	Username *string `json:"username"`                                          // New username
	Password *string `json:"password"`                                          // New password
	Email    *string `json:"email" binding:"omitempty,email"`                   // New email
	Name     *string `json:"name"`                                              // New name
	Role     *string `json:"role" binding:"omitempty,oneof=user manager admin"` // New role
	Avatar   *string `json:"avatar"`                                            // New avatar URL
}
