package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"admin_dashboard/internal/domain"
	"admin_dashboard/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full route table against the given store, with
// caching disabled (nil redis client)
func newTestRouter(store storage.Storage) *gin.Engine {
	r := gin.New()

	users := r.Group("/api/users")
	users.GET("", ListUsersHandler(store, nil))
	users.GET("/:id", GetUserHandler(store))
	users.POST("", CreateUserHandler(store, nil))
	users.PATCH("/:id", UpdateUserHandler(store, nil))
	users.DELETE("/:id", DeleteUserHandler(store, nil))

	dashboard := r.Group("/api/dashboard")
	dashboard.GET("/metrics", GetMetricsHandler(store, nil))
	dashboard.GET("/transactions", GetTransactionsHandler(store, nil))
	dashboard.POST("/transactions", CreateTransactionHandler(store, nil))
	dashboard.GET("/activities", GetActivitiesHandler(store, nil))
	dashboard.POST("/activities", CreateActivityHandler(store, nil))
	dashboard.GET("/revenue", GetRevenueHandler(store, nil))
	dashboard.POST("/revenue", CreateRevenueHandler(store, nil))
	dashboard.GET("/export", ExportHandler(store))

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listUsers(t *testing.T, r *gin.Engine) []domain.User {
	t.Helper()
	w := doRequest(t, r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	return users
}

func TestCreateUserReturnsCreatedRecord(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodPost, "/api/users",
		`{"username":"alice","password":"secret","email":"alice@example.com","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUserMissingEmailRejected(t *testing.T) {
	store := storage.NewMemory()
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodPost, "/api/users",
		`{"username":"bob","password":"secret","name":"Bob"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The rejected request must leave the user list untouched
	assert.Empty(t, listUsers(t, r))
}

func TestCreateUserInvalidRoleRejected(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	w := doRequest(t, r, http.MethodPost, "/api/users",
		`{"username":"bob","password":"secret","email":"bob@example.com","name":"Bob","role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDuplicateRejected(t *testing.T) {
	r := newTestRouter(storage.NewMemory())

	first := `{"username":"alice","password":"secret","email":"alice@example.com","name":"Alice"}`
	w := doRequest(t, r, http.MethodPost, "/api/users", first)
	require.Equal(t, http.StatusCreated, w.Code)

	second := `{"username":"alice","password":"secret","email":"other@example.com","name":"Other"}`
	w = doRequest(t, r, http.MethodPost, "/api/users", second)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, listUsers(t, r), 1)
}

func TestGetUserByID(t *testing.T) {
	store := storage.NewMemory()
	created, err := store.CreateUser(domain.InsertUser{
		Username: "alice", Password: "secret", Email: "alice@example.com", Name: "Alice",
	})
	require.NoError(t, err)
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var user domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestGetUserNonNumericID(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodGet, "/api/users/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchUserPartialUpdate(t *testing.T) {
	store := storage.NewMemory()
	created, err := store.CreateUser(domain.InsertUser{
		Username: "alice", Password: "secret", Email: "alice@example.com", Name: "Alice",
	})
	require.NoError(t, err)
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodPatch, "/api/users/1", `{"name":"Alice B","role":"manager"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, domain.RoleManager, user.Role)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.CreatedAt.Equal(created.CreatedAt), "createdAt must survive a patch")
}

func TestPatchUserNotFound(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodPatch, "/api/users/99", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	store := storage.NewMemory()
	_, err := store.CreateUser(domain.InsertUser{
		Username: "alice", Password: "secret", Email: "alice@example.com", Name: "Alice",
	})
	require.NoError(t, err)
	r := newTestRouter(store)

	w := doRequest(t, r, http.MethodDelete, "/api/users/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doRequest(t, r, http.MethodGet, "/api/users/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserNotFound(t *testing.T) {
	r := newTestRouter(storage.NewMemory())
	w := doRequest(t, r, http.MethodDelete, "/api/users/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
