package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saapaadu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    GetUserID(c),
			"email": GetEmail(c),
			"role":  GetRole(c),
		})
	})
	r.GET("/vendors-only", AuthRequired(), RoleRequired(models.RoleVendor), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	r := testRouter()

	user := &models.User{ID: 42, Email: "v@example.com", Role: models.RoleVendor}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"role":"vendor"`)
}

func TestAuthRequiredRejections(t *testing.T) {
	r := testRouter()

	// no header
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// malformed header
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	r := testRouter()

	customerToken, err := GenerateToken(&models.User{ID: 1, Email: "c@example.com", Role: models.RoleCustomer})
	require.NoError(t, err)
	vendorToken, err := GenerateToken(&models.User{ID: 2, Email: "v@example.com", Role: models.RoleVendor})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/vendors-only", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/vendors-only", nil)
	req.Header.Set("Authorization", "Bearer "+vendorToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
