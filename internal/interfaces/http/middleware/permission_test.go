package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/codatendechat/gateway/internal/domain/gateway"
)

func setupPermissionRouter(token *gateway.ApiToken, required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if token != nil {
		router.Use(func(c *gin.Context) {
			c.Set(ContextKeyApiToken, token)
			c.Set(ContextKeyCompanyID, token.CompanyID)
			c.Next()
		})
	}
	router.GET("/resource", RequirePermission(required), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func runPermissionRequest(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequirePermission_ExactMatch(t *testing.T) {
	token := newApiToken(uuid.New(), "contacts:read", "messages:write")
	rec := runPermissionRequest(setupPermissionRouter(token, "contacts:read"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermission_Wildcard(t *testing.T) {
	for _, wildcard := range []string{"*", "all"} {
		token := newApiToken(uuid.New(), wildcard)
		rec := runPermissionRequest(setupPermissionRouter(token, "whatsapps:read"))

		assert.Equal(t, http.StatusOK, rec.Code, "wildcard %q", wildcard)
	}
}

func TestRequirePermission_Denied(t *testing.T) {
	token := newApiToken(uuid.New(), "contacts:read")
	router := setupPermissionRouter(token, "contacts:write")

	rec := runPermissionRequest(router)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, "Permission denied", body["error"])
}

func TestRequirePermission_NoToken(t *testing.T) {
	rec := runPermissionRequest(setupPermissionRouter(nil, "contacts:read"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "AUTH_REQUIRED", body["code"])
}
