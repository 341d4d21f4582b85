package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/dishes", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func postDishes(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/dishes", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := newAuthRouter()
	require.Equal(t, http.StatusUnauthorized, postDishes(r, "").Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	r := newAuthRouter()
	token, err := utils.GenerateToken(1, "admin", "another-secret", time.Hour)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, postDishes(r, token).Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := newAuthRouter()
	token, err := utils.GenerateToken(1, "admin", testSecret, -time.Minute)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, postDishes(r, token).Code)
}

func TestAdminGateForbidsCustomers(t *testing.T) {
	r := newAuthRouter("admin")
	token, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, postDishes(r, token).Code)
}

func TestAdminGateAllowsAdmins(t *testing.T) {
	r := newAuthRouter("admin")
	token, err := utils.GenerateToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	w := postDishes(r, token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"userId":1`)
	require.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthMiddlewarePassesClaimsThrough(t *testing.T) {
	r := newAuthRouter()
	token, err := utils.GenerateToken(42, "customer", testSecret, time.Hour)
	require.NoError(t, err)

	w := postDishes(r, token)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"userId":42`)
	require.Contains(t, w.Body.String(), `"role":"customer"`)
}
