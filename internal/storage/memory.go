package storage

import (
	"fmt"  // Error formatting
	"sort" // Stable sorting for list queries
	"sync" // Mutex guarding maps and id counters
	"time" // createdAt stamping

	"admin_dashboard/internal/domain" // Importing domain models
)

// Memory is the in-memory Storage implementation. A single mutex guards the
// maps and the per-kind id counters, so id assignment is atomic with the
// insert and readers never observe a partially written record.
type Memory struct {
	mu sync.RWMutex // Guards everything below

	users        map[int]domain.User        // Users keyed by id
	transactions map[int]domain.Transaction // Transactions keyed by id
	activities   map[int]domain.Activity    // Activities keyed by id
	revenue      map[int]domain.RevenueData // Revenue entries keyed by id
	metrics      *domain.DashboardMetrics   // Singleton metrics record, nil until first write

	userID        int // Next user id
	transactionID int // Next transaction id
	activityID    int // Next activity id
	revenueID     int // Next revenue id
	metricsID     int // Next metrics id
}

// NewMemory creates an empty in-memory store with all id counters at 1
func NewMemory() *Memory {
	return &Memory{
		users:         make(map[int]domain.User),
		transactions:  make(map[int]domain.Transaction),
		activities:    make(map[int]domain.Activity),
		revenue:       make(map[int]domain.RevenueData),
		userID:        1,
		transactionID: 1,
		activityID:    1,
		revenueID:     1,
		metricsID:     1,
	}
}

// GetUser fetches a user by id
func (m *Memory) GetUser(id int) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound // No live record for this id
	}
	return &u, nil // Map access copies, safe to hand out
}

// GetUserByUsername scans users for the first matching username
func (m *Memory) GetUserByUsername(username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range sortedKeys(m.users) {
		if u := m.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetAllUsers returns every user in insertion (id) order
func (m *Memory) GetAllUsers() ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.User, 0, len(m.users))
	for _, id := range sortedKeys(m.users) {
		out = append(out, m.users[id])
	}
	return out, nil
}

// CreateUser assigns the next user id, stamps createdAt and stores the record.
// Username and email must be unique across users.
func (m *Memory) CreateUser(in domain.InsertUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkUserUnique(in.Username, in.Email, 0); err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser // Role defaults to user
	}
	u := domain.User{
		ID:        m.userID,   // Next id for this kind
		Username:  in.Username,
		Password:  in.Password, // Stored as given, no hashing at this layer
		Email:     in.Email,
		Name:      in.Name,
		Role:      role,
		Avatar:    in.Avatar,
		CreatedAt: time.Now(), // Stamped exactly once, here
	}
	m.userID++
	m.users[u.ID] = u
	return &u, nil
}

// UpdateUser merges non-nil fields onto the existing record. The id and
// createdAt never change.
func (m *Memory) UpdateUser(id int, in domain.UpdateUser) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	username, email := u.Username, u.Email
	if in.Username != nil {
		username = *in.Username
	}
	if in.Email != nil {
		email = *in.Email
	}
	if err := m.checkUserUnique(username, email, id); err != nil {
		return nil, err
	}
	u.Username = username
	u.Email = email
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
	m.users[id] = u
	return &u, nil
}

// DeleteUser removes the record and reports whether one was present
func (m *Memory) DeleteUser(id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

// checkUserUnique rejects a username or email already held by another user.
// The caller must hold the write lock. excludeID skips the record being updated.
func (m *Memory) checkUserUnique(username, email string, excludeID int) error {
	for id, u := range m.users {
		if id == excludeID {
			continue
		}
		if u.Username == username {
			return fmt.Errorf("%w: username %q already exists", ErrDuplicate, username)
		}
		if u.Email == email {
			return fmt.Errorf("%w: email %q already exists", ErrDuplicate, email)
		}
	}
	return nil
}

// GetDashboardMetrics returns the singleton metrics record
func (m *Memory) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.metrics == nil {
		return nil, ErrNotFound // Never written
	}
	metrics := *m.metrics
	return &metrics, nil
}

// UpdateDashboardMetrics replaces the singleton wholesale. The record keeps
// the id assigned on first write; updatedAt is refreshed on every write.
func (m *Memory) UpdateDashboardMetrics(in domain.InsertDashboardMetrics) (*domain.DashboardMetrics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.metricsID
	if m.metrics != nil {
		id = m.metrics.ID // Overwrites keep the original id
	} else {
		m.metricsID++
	}
	metrics := domain.DashboardMetrics{
		ID:               id,
		Revenue:          in.Revenue,
		Users:            in.Users,
		ConversionRate:   in.ConversionRate,
		GrowthRate:       in.GrowthRate,
		RevenueChange:    in.RevenueChange,
		UsersChange:      in.UsersChange,
		ConversionChange: in.ConversionChange,
		GrowthChange:     in.GrowthChange,
		UpdatedAt:        time.Now(),
	}
	m.metrics = &metrics
	out := metrics
	return &out, nil
}

// GetTransactions returns the most recent transactions, newest first,
// truncated to limit (default 10). Records with equal timestamps keep their
// insertion order on every call.
func (m *Memory) GetTransactions(limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(m.transactions))
	for _, id := range sortedKeys(m.transactions) {
		out = append(out, m.transactions[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt) // Newest first
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CreateTransaction assigns the next transaction id and stamps createdAt
func (m *Memory) CreateTransaction(in domain.InsertTransaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := domain.Transaction{
		ID:             m.transactionID,
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerAvatar: in.CustomerAvatar,
		Plan:           in.Plan,
		Amount:         in.Amount,
		Status:         in.Status,
		CreatedAt:      time.Now(),
	}
	m.transactionID++
	m.transactions[t.ID] = t
	return &t, nil
}

// GetActivities returns the most recent activities, newest first,
// truncated to limit (default 10)
func (m *Memory) GetActivities(limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Activity, 0, len(m.activities))
	for _, id := range sortedKeys(m.activities) {
		out = append(out, m.activities[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt) // Newest first
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CreateActivity assigns the next activity id and stamps createdAt
func (m *Memory) CreateActivity(in domain.InsertActivity) (*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := domain.Activity{
		ID:          m.activityID,
		Type:        in.Type,
		Description: in.Description,
		Icon:        in.Icon,
		IconColor:   in.IconColor,
		CreatedAt:   time.Now(),
	}
	m.activityID++
	m.activities[a.ID] = a
	return &a, nil
}

// GetRevenueData returns the last `days` entries (default 7) in ascending
// date order. Lexicographic comparison is valid because dates are
// zero-padded ISO form.
func (m *Memory) GetRevenueData(days int) ([]domain.RevenueData, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RevenueData, 0, len(m.revenue))
	for _, id := range sortedKeys(m.revenue) {
		out = append(out, m.revenue[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date // Oldest first
	})
	if len(out) > days {
		out = out[len(out)-days:] // Keep the most recent window
	}
	return out, nil
}

// CreateRevenueData assigns the next revenue id and stamps createdAt
func (m *Memory) CreateRevenueData(in domain.InsertRevenueData) (*domain.RevenueData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := domain.RevenueData{
		ID:        m.revenueID,
		Date:      in.Date,
		Revenue:   in.Revenue,
		CreatedAt: time.Now(),
	}
	m.revenueID++
	m.revenue[r.ID] = r
	return &r, nil
}

// sortedKeys returns the map keys in ascending order, the stable base order
// for every list query
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
