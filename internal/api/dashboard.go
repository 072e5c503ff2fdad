package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Export timestamp

	"admin_dashboard/internal/domain"  // Importing domain models
	"admin_dashboard/internal/storage" // Repository contract
	"admin_dashboard/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Cache keys for the default dashboard reads. Only the windows the polling
// client requests are cached; other limits go straight to the store and
// never go stale.
const (
	metricsCacheKey      = "dashboard:metrics"
	transactionsCacheKey = "dashboard:transactions:default"
	activitiesCacheKey   = "dashboard:activities:default"
	revenueCacheKey      = "dashboard:revenue:default"
)

// Export windows, wider than the on-screen defaults
const (
	exportTransactionLimit = 100 // Transactions bundled into an export
	exportActivityLimit    = 50  // Activities bundled into an export
	exportRevenueDays      = 30  // Revenue days bundled into an export
)

// queryWindow reads a positive integer query parameter, falling back to the
// default for missing, non-numeric or non-positive values
func queryWindow(c *gin.Context, name string, def int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return def
}

// GetMetricsHandler returns the singleton dashboard metrics record
func GetMetricsHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached domain.DashboardMetrics
		if found, err := utils.GetCache(ctx, rdb, metricsCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		metrics, err := store.GetDashboardMetrics()
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// The singleton has never been written
				c.JSON(http.StatusNotFound, gin.H{"error": "Dashboard metrics not found"})
				return
			}
			logrus.WithField("error", err.Error()).Error("Failed to fetch dashboard metrics")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard metrics"})
			return
		}
		_ = utils.SetCache(ctx, rdb, metricsCacheKey, metrics, utils.CacheTTL)
		c.JSON(http.StatusOK, metrics)
	}
}

// GetTransactionsHandler returns recent transactions, newest first
func GetTransactionsHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := queryWindow(c, "limit", storage.DefaultTransactionLimit)
		ctx := context.Background()
		if limit == storage.DefaultTransactionLimit {
			var cached []domain.Transaction
			if found, err := utils.GetCache(ctx, rdb, transactionsCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		txs, err := store.GetTransactions(limit)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch transactions")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		if limit == storage.DefaultTransactionLimit {
			_ = utils.SetCache(ctx, rdb, transactionsCacheKey, txs, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, txs)
	}
}

// CreateTransactionHandler validates and stores a new transaction
func CreateTransactionHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.InsertTransaction // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction data: " + err.Error()})
			return
		}
		tx, err := store.CreateTransaction(req)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,     // Assigned transaction ID
			"customer":       tx.CustomerName,
			"amount":         tx.Amount, // Amount as decimal string
			"status":         tx.Status, // Transaction status
		}).Info("Transaction created")
		_ = utils.DeleteCache(context.Background(), rdb, transactionsCacheKey) // Invalidate default window cache
		c.JSON(http.StatusCreated, tx)
	}
}

// GetActivitiesHandler returns recent activity feed entries, newest first
func GetActivitiesHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := queryWindow(c, "limit", storage.DefaultActivityLimit)
		ctx := context.Background()
		if limit == storage.DefaultActivityLimit {
			var cached []domain.Activity
			if found, err := utils.GetCache(ctx, rdb, activitiesCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		acts, err := store.GetActivities(limit)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch activities")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
			return
		}
		if limit == storage.DefaultActivityLimit {
			_ = utils.SetCache(ctx, rdb, activitiesCacheKey, acts, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, acts)
	}
}

// CreateActivityHandler validates and stores a new activity feed entry
func CreateActivityHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.InsertActivity // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity data: " + err.Error()})
			return
		}
		activity, err := store.CreateActivity(req)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create activity")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"activity_id": activity.ID,   // Assigned activity ID
			"type":        activity.Type, // Activity category
		}).Info("Activity created")
		_ = utils.DeleteCache(context.Background(), rdb, activitiesCacheKey) // Invalidate default window cache
		c.JSON(http.StatusCreated, activity)
	}
}

// GetRevenueHandler returns the revenue series for the last N days in
// ascending date order
func GetRevenueHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := queryWindow(c, "days", storage.DefaultRevenueDays)
		ctx := context.Background()
		if days == storage.DefaultRevenueDays {
			var cached []domain.RevenueData
			if found, err := utils.GetCache(ctx, rdb, revenueCacheKey, &cached); err == nil && found {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		entries, err := store.GetRevenueData(days)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch revenue data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch revenue data"})
			return
		}
		if days == storage.DefaultRevenueDays {
			_ = utils.SetCache(ctx, rdb, revenueCacheKey, entries, utils.CacheTTL)
		}
		c.JSON(http.StatusOK, entries)
	}
}

// CreateRevenueHandler validates and stores a new revenue entry
func CreateRevenueHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.InsertRevenueData // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid revenue data: " + err.Error()})
			return
		}
		entry, err := store.CreateRevenueData(req)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create revenue data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create revenue data"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"revenue_id": entry.ID,   // Assigned entry ID
			"date":       entry.Date, // Calendar day
		}).Info("Revenue entry created")
		_ = utils.DeleteCache(context.Background(), rdb, revenueCacheKey) // Invalidate default window cache
		c.JSON(http.StatusCreated, entry)
	}
}

// ExportResponse bundles the dashboard data into a single downloadable document
type ExportResponse struct {
	Metrics      *domain.DashboardMetrics `json:"metrics"`      // Singleton metrics, null if never written
	Transactions []domain.Transaction     `json:"transactions"` // Up to 100 recent transactions
	Activities   []domain.Activity        `json:"activities"`   // Up to 50 recent activities
	RevenueData  []domain.RevenueData     `json:"revenueData"`  // Last 30 days of revenue
	ExportedAt   string                   `json:"exportedAt"`   // Export timestamp
}

// ExportHandler bundles metrics, transactions, activities and revenue into a
// JSON attachment. The four reads are independently consistent; there is no
// cross-entity snapshot.
func ExportHandler(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics, err := store.GetDashboardMetrics()
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			logrus.WithField("error", err.Error()).Error("Failed to export dashboard data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export dashboard data"})
			return
		}
		txs, err := store.GetTransactions(exportTransactionLimit)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to export dashboard data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export dashboard data"})
			return
		}
		acts, err := store.GetActivities(exportActivityLimit)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to export dashboard data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export dashboard data"})
			return
		}
		entries, err := store.GetRevenueData(exportRevenueDays)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to export dashboard data")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export dashboard data"})
			return
		}
		export := ExportResponse{
			Metrics:      metrics, // nil marshals as null when never written
			Transactions: txs,
			Activities:   acts,
			RevenueData:  entries,
			ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		c.Header("Content-Disposition", `attachment; filename="dashboard-export.json"`) // Serve as a download
		c.JSON(http.StatusOK, export)
	}
}
