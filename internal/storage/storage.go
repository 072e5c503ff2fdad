package storage

import (
	"errors" // Sentinel errors

	"admin_dashboard/internal/domain" // Importing domain models
)

// Sentinel errors raised by storage implementations
var (
	ErrNotFound  = errors.New("record not found")  // No live record for the given key
	ErrDuplicate = errors.New("duplicate value")   // Unique field conflict (username or email)
)

// Default query windows
const (
	DefaultTransactionLimit = 10 // Default number of transactions returned
	DefaultActivityLimit    = 10 // Default number of activities returned
	DefaultRevenueDays      = 7  // Default number of revenue days returned
)

// Storage is the repository contract over all dashboard entities.
// It owns id assignment and createdAt stamping; callers pre-validate payloads.
type Storage interface {
	// Users
	GetUser(id int) (*domain.User, error)                            // Fetch by id, ErrNotFound if absent
	GetUserByUsername(username string) (*domain.User, error)         // Linear scan, ErrNotFound if absent
	GetAllUsers() ([]domain.User, error)                             // All users in insertion order
	CreateUser(in domain.InsertUser) (*domain.User, error)           // ErrDuplicate on username/email conflict
	UpdateUser(id int, in domain.UpdateUser) (*domain.User, error)   // Partial merge, ErrNotFound if absent
	DeleteUser(id int) (bool, error)                                 // Reports whether a record was present

	// Dashboard metrics (singleton)
	GetDashboardMetrics() (*domain.DashboardMetrics, error)                            // ErrNotFound if never written
	UpdateDashboardMetrics(in domain.InsertDashboardMetrics) (*domain.DashboardMetrics, error) // Wholesale replace

	// Transactions
	GetTransactions(limit int) ([]domain.Transaction, error)              // Most recent first
	CreateTransaction(in domain.InsertTransaction) (*domain.Transaction, error)

	// Activities
	GetActivities(limit int) ([]domain.Activity, error) // Most recent first
	CreateActivity(in domain.InsertActivity) (*domain.Activity, error)

	// Revenue series
	GetRevenueData(days int) ([]domain.RevenueData, error) // Last N days in ascending date order
	CreateRevenueData(in domain.InsertRevenueData) (*domain.RevenueData, error)
}
