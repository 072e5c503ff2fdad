package storage

import (
	"time" // Backdated timestamps for the sample records

	"admin_dashboard/internal/domain" // Importing domain models
)

// strPtr is a small helper for optional string fields
func strPtr(s string) *string { return &s }

// SeedDemoData loads the sample dataset the dashboard ships with: one admin
// user, the metrics record, three transactions, four activities and seven
// days of revenue. Sample records are backdated so the feeds have a history.
func (m *Memory) SeedDemoData() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()

	// Sample admin user
	user := domain.User{
		ID:        m.userID,
		Username:  "johndoe",
		Password:  "hashedpassword",
		Email:     "john@company.com",
		Name:      "John Doe",
		Role:      domain.RoleAdmin,
		Avatar:    strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
		CreatedAt: now,
	}
	m.userID++
	m.users[user.ID] = user

	// Dashboard metrics
	m.metrics = &domain.DashboardMetrics{
		ID:               m.metricsID,
		Revenue:          "47892.00",
		Users:            12847,
		ConversionRate:   "24.80",
		GrowthRate:       "89.20",
		RevenueChange:    "12.50",
		UsersChange:      "8.20",
		ConversionChange: "3.10",
		GrowthChange:     "15.30",
		UpdatedAt:        now,
	}
	m.metricsID++

	// Recent transactions, aged one to three days
	sampleTransactions := []domain.Transaction{
		{
			CustomerID:     1,
			CustomerName:   "Alex Johnson",
			CustomerEmail:  "alex@company.com",
			CustomerAvatar: strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			Plan:           "Pro Plan",
			Amount:         "99.00",
			Status:         domain.StatusCompleted,
			CreatedAt:      now.Add(-1 * 24 * time.Hour),
		},
		{
			CustomerID:     2,
			CustomerName:   "Sarah Wilson",
			CustomerEmail:  "sarah@startup.co",
			CustomerAvatar: strPtr("https://images.unsplash.com/photo-1494790108755-2616b332c63d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			Plan:           "Enterprise",
			Amount:         "299.00",
			Status:         domain.StatusPending,
			CreatedAt:      now.Add(-2 * 24 * time.Hour),
		},
		{
			CustomerID:     3,
			CustomerName:   "Michael Chen",
			CustomerEmail:  "mike@tech.io",
			CustomerAvatar: strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			Plan:           "Basic Plan",
			Amount:         "29.00",
			Status:         domain.StatusCompleted,
			CreatedAt:      now.Add(-3 * 24 * time.Hour),
		},
	}
	for _, t := range sampleTransactions {
		t.ID = m.transactionID
		m.transactionID++
		m.transactions[t.ID] = t
	}

	// Activity feed entries, minutes to hours old
	sampleActivities := []domain.Activity{
		{Type: "subscription_started", Description: "New subscription started", Icon: "check", IconColor: "green", CreatedAt: now.Add(-2 * time.Minute)},
		{Type: "user_registered", Description: "User registered", Icon: "user-plus", IconColor: "blue", CreatedAt: now.Add(-5 * time.Minute)},
		{Type: "payment_processed", Description: "Payment processed", Icon: "credit-card", IconColor: "purple", CreatedAt: now.Add(-1 * time.Hour)},
		{Type: "system_maintenance", Description: "System maintenance", Icon: "alert-triangle", IconColor: "orange", CreatedAt: now.Add(-3 * time.Hour)},
	}
	for _, a := range sampleActivities {
		a.ID = m.activityID
		m.activityID++
		m.activities[a.ID] = a
	}

	// Revenue for the last seven days, oldest first
	sampleRevenue := []string{"12000.00", "19000.00", "15000.00", "25000.00", "22000.00", "30000.00", "28000.00"}
	for i, revenue := range sampleRevenue {
		day := now.Add(time.Duration(i-len(sampleRevenue)+1) * 24 * time.Hour)
		r := domain.RevenueData{
			ID:        m.revenueID,
			Date:      day.Format("2006-01-02"),
			Revenue:   revenue,
			CreatedAt: now,
		}
		m.revenueID++
		m.revenue[r.ID] = r
	}
}
