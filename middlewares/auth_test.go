package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softpro2020/foodland/entity"
	"github.com/softpro2020/foodland/utils"
)

const testSecret = "test-secret"

func authRouter(roles ...entity.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func guardedRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	w := guardedRequest(t, authRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	w := guardedRequest(t, authRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(1, entity.RoleCustomer, "other-secret", time.Hour)
	require.NoError(t, err)

	w := guardedRequest(t, authRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	customer, err := utils.GenerateToken(7, entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)
	manager, err := utils.GenerateToken(8, entity.RoleManager, testSecret, time.Hour)
	require.NoError(t, err)

	r := authRouter(entity.RoleManager, entity.RoleBranchManager)

	w := guardedRequest(t, r, customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = guardedRequest(t, r, manager)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareAdminPassesEveryGate(t *testing.T) {
	admin, err := utils.GenerateToken(1, entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	w := guardedRequest(t, authRouter(entity.RoleCustomer), admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareExposesClaims(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	w := guardedRequest(t, authRouter(), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
	assert.Contains(t, w.Body.String(), `"role":"customer"`)
}
