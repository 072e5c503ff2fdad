package storage

import (
	"errors" // Mapping gorm errors to sentinels
	"fmt"    // Error formatting
	"time"   // createdAt stamping

	"admin_dashboard/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Gorm is the MySQL-backed Storage implementation. The database assigns ids
// via AUTO_INCREMENT, which preserves per-kind monotonicity under concurrent
// inserts; query ordering carries an id tie-break so repeated calls return
// the same order for equal timestamps.
type Gorm struct {
	db *gorm.DB // Database handle
}

// NewGorm wraps an open gorm handle in the Storage contract
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// GetUser fetches a user by id
func (g *Gorm) GetUser(id int) (*domain.User, error) {
	var u domain.User
	if err := g.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername fetches the first user with the given username
func (g *Gorm) GetUserByUsername(username string) (*domain.User, error) {
	var u domain.User
	if err := g.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetAllUsers returns every user in insertion (id) order
func (g *Gorm) GetAllUsers() ([]domain.User, error) {
	var users []domain.User
	if err := g.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser stores a new user; username and email must be unique
func (g *Gorm) CreateUser(in domain.InsertUser) (*domain.User, error) {
	if err := g.checkUserUnique(in.Username, in.Email, 0); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser // Role defaults to user
	}
	u := domain.User{
		Username:  in.Username,
		Password:  in.Password, // Stored as given, no hashing at this layer
		Email:     in.Email,
		Name:      in.Name,
		Role:      role,
		Avatar:    in.Avatar,
		CreatedAt: time.Now(),
	}
	if err := g.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser merges non-nil fields onto the existing record
func (g *Gorm) UpdateUser(id int, in domain.UpdateUser) (*domain.User, error) {
	var u domain.User
	if err := g.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if err := g.checkUserUnique(u.Username, u.Email, id); err != nil {
		return nil, err
	}
	if in.Password != nil {
		u.Password = *in.Password
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Avatar != nil {
		u.Avatar = in.Avatar
	}
	if err := g.db.Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the record and reports whether one was present
func (g *Gorm) DeleteUser(id int) (bool, error) {
	res := g.db.Delete(&domain.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// checkUserUnique rejects a username or email already held by another user
func (g *Gorm) checkUserUnique(username, email string, excludeID int) error {
	var count int64
	if err := g.db.Model(&domain.User{}).Where("username = ? AND id <> ?", username, excludeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: username %q already exists", ErrDuplicate, username)
	}
	if err := g.db.Model(&domain.User{}).Where("email = ? AND id <> ?", email, excludeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: email %q already exists", ErrDuplicate, email)
	}
	return nil
}

// GetDashboardMetrics returns the singleton metrics record
func (g *Gorm) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	var m domain.DashboardMetrics
	if err := g.db.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // Never written
		}
		return nil, err
	}
	return &m, nil
}

// UpdateDashboardMetrics replaces the singleton wholesale, keeping the id
// assigned on first write
func (g *Gorm) UpdateDashboardMetrics(in domain.InsertDashboardMetrics) (*domain.DashboardMetrics, error) {
	var m domain.DashboardMetrics
	err := g.db.First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	m.Revenue = in.Revenue
	m.Users = in.Users
	m.ConversionRate = in.ConversionRate
	m.GrowthRate = in.GrowthRate
	m.RevenueChange = in.RevenueChange
	m.UsersChange = in.UsersChange
	m.ConversionChange = in.ConversionChange
	m.GrowthChange = in.GrowthChange
	m.UpdatedAt = time.Now()
	if err := g.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTransactions returns the most recent transactions, newest first
func (g *Gorm) GetTransactions(limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	var txs []domain.Transaction
	if err := g.db.Order("created_at desc, id asc").Limit(limit).Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction stores a new transaction
func (g *Gorm) CreateTransaction(in domain.InsertTransaction) (*domain.Transaction, error) {
	t := domain.Transaction{
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerAvatar: in.CustomerAvatar,
		Plan:           in.Plan,
		Amount:         in.Amount,
		Status:         in.Status,
		CreatedAt:      time.Now(),
	}
	if err := g.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetActivities returns the most recent activities, newest first
func (g *Gorm) GetActivities(limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	var acts []domain.Activity
	if err := g.db.Order("created_at desc, id asc").Limit(limit).Find(&acts).Error; err != nil {
		return nil, err
	}
	return acts, nil
}

// CreateActivity stores a new activity
func (g *Gorm) CreateActivity(in domain.InsertActivity) (*domain.Activity, error) {
	a := domain.Activity{
		Type:        in.Type,
		Description: in.Description,
		Icon:        in.Icon,
		IconColor:   in.IconColor,
		CreatedAt:   time.Now(),
	}
	if err := g.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetRevenueData returns the last `days` entries in ascending date order.
// The query fetches the window newest-first and reverses it.
func (g *Gorm) GetRevenueData(days int) ([]domain.RevenueData, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}
	var entries []domain.RevenueData
	if err := g.db.Order("date desc, id desc").Limit(days).Find(&entries).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// CreateRevenueData stores a new revenue entry
func (g *Gorm) CreateRevenueData(in domain.InsertRevenueData) (*domain.RevenueData, error) {
	r := domain.RevenueData{
		Date:      in.Date,
		Revenue:   in.Revenue,
		CreatedAt: time.Now(),
	}
	if err := g.db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
