package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"admin_dashboard/internal/domain"  // Importing domain models
	"admin_dashboard/internal/storage" // Repository contract
	"admin_dashboard/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Cache key for the full user list
const usersCacheKey = "users:all"

// ListUsersHandler returns all users in insertion order
func ListUsersHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.User
		// Serve from cache when fresh
		if found, err := utils.GetCache(ctx, rdb, usersCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		users, err := store.GetAllUsers()
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		_ = utils.SetCache(ctx, rdb, usersCacheKey, users, utils.CacheTTL) // Cache for the poll interval
		c.JSON(http.StatusOK, users)
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse the path id
		if err != nil {
			// Non-numeric id is a client error
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		user, err := store.GetUser(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to fetch user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler validates and stores a new user
func CreateUserHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.InsertUser // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request with the reason
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user data: " + err.Error()})
			return
		}
		user, err := store.CreateUser(req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				// Uniqueness conflict is a validation failure
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logrus.WithFields(logrus.Fields{"username": req.Username, "error": err.Error()}).Error("Failed to create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // Assigned user ID
			"username": user.Username, // Username
			"role":     user.Role,     // Role
		}).Info("User created")
		_ = utils.DeleteCache(context.Background(), rdb, usersCacheKey) // Invalidate user list cache
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateUserHandler applies a partial update to an existing user
func UpdateUserHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse the path id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var req domain.UpdateUser // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user data: " + err.Error()})
			return
		}
		user, err := store.UpdateUser(id, req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			if errors.Is(err, storage.ErrDuplicate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to update user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // Username after update
		}).Info("User updated")
		_ = utils.DeleteCache(context.Background(), rdb, usersCacheKey) // Invalidate user list cache
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler removes a user by id
func DeleteUserHandler(store storage.Storage, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse the path id
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		deleted, err := store.DeleteUser(id)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to delete user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		if !deleted {
			// No live record for this id
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logrus.WithField("user_id", id).Info("User deleted")                // Log successful deletion
		_ = utils.DeleteCache(context.Background(), rdb, usersCacheKey)    // Invalidate user list cache
		c.Status(http.StatusNoContent)                                     // Empty success response
	}
}
