package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfarouk/marketpro-api/internal/config"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/handler"
	"github.com/mfarouk/marketpro-api/internal/storage"
	"github.com/mfarouk/marketpro-api/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	s, err := store.New(kv)
	require.NoError(t, err)

	handlers := &Handlers{
		Auth:         handler.NewAuthHandler(s),
		Company:      handler.NewCompanyHandler(s),
		Product:      handler.NewProductHandler(s),
		Invoice:      handler.NewInvoiceHandler(s),
		Sale:         handler.NewSaleHandler(s),
		Notification: handler.NewNotificationHandler(s),
		Settings:     handler.NewSettingsHandler(s),
		PriceList:    handler.NewPriceListHandler(s),
		User:         handler.NewUserHandler(s),
		Dashboard:    handler.NewDashboardHandler(s),
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "marketpro-api", Env: "test"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
	}

	return Setup(handlers, &Deps{Store: s, Cfg: cfg})
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/companies", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenWorkflow(t *testing.T) {
	router := newTestRouter(t)

	// Seeded admin credentials.
	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The session is recorded store-side, no token needed.
	w = doJSON(router, http.MethodPost, "/api/v1/companies", gin.H{"name": "Al Nour Trading"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID   string `json:"id"`
			Code string `json:"code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "10", created.Data.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/products", gin.H{
		"company_id":      created.Data.ID,
		"name":            "Olive Oil 1L",
		"price_after_tax": 10,
		"stock":           20,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard struct {
		Data struct {
			Companies int `json:"companies"`
			Products  int `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, 1, dashboard.Data.Companies)
	assert.Equal(t, 1, dashboard.Data.Products)

	// Logout drops the session for every following request.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/companies", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "admin",
		"password": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/users", gin.H{
		"username": "clerk",
		"password": "secret",
		"name":     "Till Clerk",
		"role":     "employee",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Switch the session to the employee and retry.
	w = doJSON(router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "clerk",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
