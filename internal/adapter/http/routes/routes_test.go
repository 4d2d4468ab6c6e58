package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forro_orcamento/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Port:               8080,
		CatalogSource:      config.CatalogSourceStatic,
		AdvisoryMock:       true,
		AdvisoryRPS:        100,
		AdvisoryTimeout:    time.Second,
		PaymentGatewayMock: true,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
	}
}

func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(testConfig(), nil)
	require.NoError(t, err)

	t.Run("ping", func(t *testing.T) {
		w := serve(t, router, http.MethodGet, "/v1/ping", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assert.Equal(t, `"pong"`, w.Body.String())
	})

	t.Run("estimate with the built-in catalog", func(t *testing.T) {
		w := serve(t, router, http.MethodPost, "/v1/budgets", `{"width":3,"length":4,"product_id":"62"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "588.70", body["total_material_cost"])
		assert.Equal(t, "1008.70", body["total_project_cost"])
	})

	t.Run("unknown product", func(t *testing.T) {
		w := serve(t, router, http.MethodPost, "/v1/budgets", `{"width":3,"length":4,"product_id":"38"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("checkout in mock mode", func(t *testing.T) {
		w := serve(t, router, http.MethodPost, "/v1/budgets/checkout", `{"width":3,"length":4,"product_id":"62"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "1008.70", body["amount"])
		assert.Equal(t, "aprovado", body["status"])
	})

	t.Run("advice in mock mode", func(t *testing.T) {
		w := serve(t, router, http.MethodPost, "/v1/advice", `{"width":3,"length":4,"material":"PVC Liso"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sub categories", func(t *testing.T) {
		w := serve(t, router, http.MethodGet, "/v1/catalog/subcategories", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1
	router, err := NewRouter(cfg, nil)
	require.NoError(t, err)

	first := serve(t, router, http.MethodGet, "/v1/ping", "")
	second := serve(t, router, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
