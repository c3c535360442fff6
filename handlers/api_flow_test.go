package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"saapaadu-api/config"
	"saapaadu-api/routes"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nullMailer struct{}

func (nullMailer) Send(context.Context, string, string, string) error { return nil }

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	prev := services.Mail
	services.Mail = nullMailer{}
	t.Cleanup(func() { services.Mail = prev })

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func signupAndLogin(t *testing.T, r *gin.Engine, email, role string, extra map[string]interface{}) string {
	t.Helper()
	body := map[string]interface{}{
		"username": "user-" + email,
		"email":    email,
		"password": "secret123",
		"role":     role,
	}
	for k, v := range extra {
		body[k] = v
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthEndpoints(t *testing.T) {
	r := setupAPI(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"username": "mani", "email": "mani@example.com", "password": "secret123", "role": "customer",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// same email again
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]interface{}{
		"username": "mani2", "email": "mani@example.com", "password": "secret123", "role": "customer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// role mismatch at login
	w, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "mani@example.com", "password": "secret123", "role": "vendor",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "mani@example.com", "password": "secret123", "role": "customer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := resp["token"].(string)

	// me answers from the token
	w, resp = doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mani@example.com", resp["email"])
	assert.Equal(t, "customer", resp["role"])

	// protected route without a token
	w, _ = doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHotspotAndOrderFlow(t *testing.T) {
	r := setupAPI(t)

	vendorToken := signupAndLogin(t, r, "vendor@example.com", "vendor", map[string]interface{}{
		"veg_nonveg": "veg", "shop_name": "X", "shop_address": "Y",
		"area": "Adyar", "city": "Chennai", "state": "TN",
	})
	customerToken := signupAndLogin(t, r, "customer@example.com", "customer", map[string]interface{}{
		"area": "Adyar", "city": "Chennai", "state": "TN",
	})

	// customers cannot reach vendor routes
	w, _ := doJSON(t, r, http.MethodPost, "/api/vendor/hotspots", customerToken, map[string]interface{}{
		"meal_name": "Thali", "meal_count": 10, "price": 50, "duration": 2,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// duration=2 is hours; stored as minutes
	w, resp := doJSON(t, r, http.MethodPost, "/api/vendor/hotspots", vendorToken, map[string]interface{}{
		"meal_name": "Thali", "meal_count": 10, "price": 50, "duration": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	hotspot := resp["hotspot"].(map[string]interface{})
	assert.Equal(t, float64(120), hotspot["duration"])
	hotspotID := hotspot["id"].(float64)

	// public listing shows it
	w, resp = doJSON(t, r, http.MethodGet, "/api/hotspots", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["count"])

	// customer orders 3 meals
	w, resp = doJSON(t, r, http.MethodPost, "/api/customer/orders", customerToken, map[string]interface{}{
		"hotspot_id": hotspotID, "quantity": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := resp["order"].(map[string]interface{})
	assert.Equal(t, float64(150), order["total_price"])
	assert.Equal(t, "pending", order["status"])
	orderID := order["id"].(float64)

	// count dropped 10 -> 7
	w, resp = doJSON(t, r, http.MethodGet, "/api/hotspots/"+jsonNum(hotspotID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), resp["hotspot"].(map[string]interface{})["meal_count"])

	// notification landed in the customer inbox
	w, resp = doJSON(t, r, http.MethodGet, "/api/customer/notifications", customerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["count"])

	// customer cancels the pending order
	w, resp = doJSON(t, r, http.MethodPut, "/api/orders/"+jsonNum(orderID)+"/status", customerToken, map[string]interface{}{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "cancelled", resp["order"].(map[string]interface{})["status"])

	// cancelled is terminal
	w, _ = doJSON(t, r, http.MethodPut, "/api/orders/"+jsonNum(orderID)+"/status", customerToken, map[string]interface{}{
		"status": "pending",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHotspotOwnershipOverHTTP(t *testing.T) {
	r := setupAPI(t)

	ownerToken := signupAndLogin(t, r, "owner@example.com", "vendor", map[string]interface{}{
		"veg_nonveg": "veg", "shop_name": "X", "shop_address": "Y",
		"area": "Adyar", "city": "Chennai", "state": "TN",
	})
	rivalToken := signupAndLogin(t, r, "rival@example.com", "vendor", map[string]interface{}{
		"veg_nonveg": "veg", "shop_name": "Z", "shop_address": "W",
		"area": "Adyar", "city": "Chennai", "state": "TN",
	})

	w, resp := doJSON(t, r, http.MethodPost, "/api/vendor/hotspots", ownerToken, map[string]interface{}{
		"meal_name": "Thali", "meal_count": 5, "price": 40, "duration": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := jsonNum(resp["hotspot"].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, http.MethodPut, "/api/vendor/hotspots/"+id, rivalToken, map[string]interface{}{
		"price": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vendor/hotspots/"+id, rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/vendor/hotspots/"+id, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/hotspots/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorProfileIncompleteRejected(t *testing.T) {
	r := setupAPI(t)

	// vendor signed up without city/state
	token := signupAndLogin(t, r, "bare@example.com", "vendor", map[string]interface{}{
		"veg_nonveg": "veg", "shop_name": "X", "shop_address": "Y", "area": "Adyar",
	})

	w, resp := doJSON(t, r, http.MethodPost, "/api/vendor/hotspots", token, map[string]interface{}{
		"meal_name": "Thali", "meal_count": 10, "price": 50, "duration": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	msg := resp["error"].(string)
	assert.Contains(t, msg, "city")
	assert.Contains(t, msg, "state")
	assert.NotContains(t, msg, "shop_name")

	// completing the profile unblocks creation
	w, _ = doJSON(t, r, http.MethodPut, "/api/vendor/profile", token, map[string]interface{}{
		"city": "Chennai", "state": "TN",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/vendor/hotspots", token, map[string]interface{}{
		"meal_name": "Thali", "meal_count": 10, "price": 50, "duration": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func jsonNum(f float64) string {
	return strconv.Itoa(int(f))
}
