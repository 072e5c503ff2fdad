package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"admin_dashboard/internal/domain"
	"admin_dashboard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRouter() *gin.Engine {
	store := storage.NewMemory()
	store.SeedDemoData()
	return newTestRouter(store)
}

func TestGetMetrics(t *testing.T) {
	r := newSeededRouter()

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var metrics domain.DashboardMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.Equal(t, "47892.00", metrics.Revenue)
	assert.Equal(t, 12847, metrics.Users)
	assert.Equal(t, "24.80", metrics.ConversionRate)
}

func TestGetMetricsNeverWritten(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodGet, "/api/dashboard/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTransactionsSeededWindow(t *testing.T) {
	r := newSeededRouter()

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/transactions?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var txs []domain.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	require.Len(t, txs, 2)
	// Most recent first: Alex (1 day old) before Sarah (2 days old)
	assert.Equal(t, "Alex Johnson", txs[0].CustomerName)
	assert.Equal(t, "Sarah Wilson", txs[1].CustomerName)
}

func TestGetTransactionsNonNumericLimitFallsBack(t *testing.T) {
	r := newSeededRouter()

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/transactions?limit=abc", "")
	require.Equal(t, http.StatusOK, w.Code)

	var txs []domain.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	assert.Len(t, txs, 3) // All three seeded rows fit the default window
}

func TestCreateTransaction(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodPost, "/api/dashboard/transactions",
		`{"customerId":7,"customerName":"Dana","customerEmail":"dana@example.com","plan":"Pro Plan","amount":"99.00","status":"pending"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var tx domain.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tx))
	assert.Equal(t, 1, tx.ID)
	assert.Equal(t, "Dana", tx.CustomerName)
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestCreateTransactionUnknownStatusRejected(t *testing.T) {
	store := storage.NewMemory()
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodPost, "/api/dashboard/transactions",
		`{"customerId":7,"customerName":"Dana","customerEmail":"dana@example.com","plan":"Pro Plan","amount":"99.00","status":"refunded"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	txs, err := store.GetTransactions(0)
	require.NoError(t, err)
	assert.Empty(t, txs, "a rejected payload must not reach the store")
}

func TestGetActivities(t *testing.T) {
	r := newSeededRouter()

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/activities?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var acts []domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acts))
	require.Len(t, acts, 2)
	assert.Equal(t, "subscription_started", acts[0].Type) // 2 minutes old
	assert.Equal(t, "user_registered", acts[1].Type)      // 5 minutes old
}

func TestCreateActivity(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodPost, "/api/dashboard/activities",
		`{"type":"user_registered","description":"User registered","icon":"user-plus","iconColor":"blue"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var activity domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	assert.Equal(t, 1, activity.ID)
	assert.Equal(t, "blue", activity.IconColor)
}

func TestCreateActivityMissingIconRejected(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodPost, "/api/dashboard/activities",
		`{"type":"user_registered","description":"User registered"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRevenueWindow(t *testing.T) {
	store := storage.NewMemory()
	for i := 1; i <= 10; i++ {
		_, err := store.CreateRevenueData(domain.InsertRevenueData{
			Date:    fmt.Sprintf("2025-06-%02d", i),
			Revenue: "1000.00",
		})
		require.NoError(t, err)
	}
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/revenue?days=3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []domain.RevenueData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-06-08", entries[0].Date)
	assert.Equal(t, "2025-06-10", entries[2].Date)
}

func TestCreateRevenue(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodPost, "/api/dashboard/revenue",
		`{"date":"2025-06-15","revenue":"18000.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var entry domain.RevenueData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "2025-06-15", entry.Date)
}

func TestCreateRevenueBadDateRejected(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodPost, "/api/dashboard/revenue",
		`{"date":"June 15th","revenue":"18000.00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportBundle(t *testing.T) {
	r := newSeededRouter()

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="dashboard-export.json"`, w.Header().Get("Content-Disposition"))

	var export ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	require.NotNil(t, export.Metrics)
	assert.Equal(t, "47892.00", export.Metrics.Revenue)
	assert.Len(t, export.Transactions, 3)
	assert.Len(t, export.Activities, 4)
	assert.Len(t, export.RevenueData, 7)

	exportedAt, err := time.Parse(time.RFC3339, export.ExportedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), exportedAt, time.Minute)
}

func TestExportEmptyStore(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/export", "")
	require.Equal(t, http.StatusOK, w.Code)

	var export ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	assert.Nil(t, export.Metrics, "a never-written singleton exports as null")
	assert.Empty(t, export.Transactions)
}
