package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/codatendechat/gateway/internal/domain/gateway"
	"github.com/codatendechat/gateway/internal/domain/shared"
	"github.com/codatendechat/gateway/internal/infrastructure/logger"
)

type stubAuthenticator struct {
	tokens  map[string]*gateway.ApiToken
	expired map[string]*gateway.ApiToken
	lastKey string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, key string) (*gateway.ApiToken, error) {
	s.lastKey = key
	if key == "" {
		return nil, shared.ErrAuthRequired
	}
	if token, ok := s.expired[key]; ok {
		return token, shared.ErrKeyExpired
	}
	if token, ok := s.tokens[key]; ok {
		return token, nil
	}
	return nil, shared.ErrInvalidKey
}

func newApiToken(companyID uuid.UUID, permissions ...string) *gateway.ApiToken {
	token := &gateway.ApiToken{
		Name:        "integration",
		Token:       uuid.NewString(),
		Permissions: permissions,
		IsActive:    true,
	}
	token.ID = uuid.New()
	token.CompanyID = companyID
	return token
}

func setupAuthRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuth(auth))
	router.GET("/contacts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"company_id": GetCompanyID(c).String()})
	})
	return router
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	router := setupAuthRouter(&stubAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "AUTH_REQUIRED", body["code"])
	assert.Equal(t, "API key required", body["error"])
}

func TestAPIKeyAuth_UnknownKey(t *testing.T) {
	router := setupAuthRouter(&stubAuthenticator{})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("x-api-key", "nope")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_KEY", body["code"])
	assert.Equal(t, "Invalid API key", body["error"])
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	companyID := uuid.New()
	auth := &stubAuthenticator{tokens: map[string]*gateway.ApiToken{
		"good-key": newApiToken(companyID, "contacts:read"),
	}}
	router := setupAuthRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("x-api-key", "good-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, companyID.String(), body["company_id"])
}

func TestAPIKeyAuth_ExpiredKeyStaysAttributable(t *testing.T) {
	companyID := uuid.New()
	expired := newApiToken(companyID, "contacts:read")
	past := time.Now().Add(-time.Hour)
	expired.ExpiresAt = &past

	auth := &stubAuthenticator{expired: map[string]*gateway.ApiToken{"old-key": expired}}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	var seenToken *gateway.ApiToken
	router.Use(func(c *gin.Context) {
		c.Next()
		seenToken = GetApiToken(c)
	})
	router.Use(APIKeyAuth(auth))
	router.GET("/contacts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("x-api-key", "old-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "KEY_EXPIRED", body["code"])
	assert.Equal(t, "API key expired", body["error"])

	// the rejected identity is still visible to outer middleware
	require.NotNil(t, seenToken)
	assert.Equal(t, expired.ID, seenToken.ID)
	assert.Equal(t, companyID, seenToken.CompanyID)
}

func TestAPIKeyAuth_EnrichesRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	companyID := uuid.New()
	token := newApiToken(companyID, "contacts:read")
	auth := &stubAuthenticator{tokens: map[string]*gateway.ApiToken{"good-key": token}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(logger.GinMiddleware(zap.New(core)))
	router.Use(APIKeyAuth(auth))
	router.GET("/contacts", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("handled")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("x-api-key", "good-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// handler-side logging carries the authenticated identity
	handled := logs.FilterMessage("handled").All()
	require.Len(t, handled, 1)
	fields := handled[0].ContextMap()
	assert.Equal(t, companyID.String(), fields["company_id"])
	assert.Equal(t, token.ID.String(), fields["api_token_id"])
	assert.NotEmpty(t, fields["request_id"])

	// so does the completion line written by the request logger
	completed := logs.FilterMessage("HTTP Request").All()
	require.Len(t, completed, 1)
	assert.Equal(t, companyID.String(), completed[0].ContextMap()["company_id"])
}

func TestExtractAPIKey_Precedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(configure func(r *http.Request)) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/contacts?api_key=from-query", nil)
		configure(c.Request)
		return c
	}

	t.Run("header wins over bearer and query", func(t *testing.T) {
		c := newContext(func(r *http.Request) {
			r.Header.Set("x-api-key", "from-header")
			r.Header.Set("Authorization", "Bearer from-bearer")
		})
		assert.Equal(t, "from-header", ExtractAPIKey(c))
	})

	t.Run("bearer wins over query", func(t *testing.T) {
		c := newContext(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer from-bearer")
		})
		assert.Equal(t, "from-bearer", ExtractAPIKey(c))
	})

	t.Run("query is the last resort", func(t *testing.T) {
		c := newContext(func(r *http.Request) {})
		assert.Equal(t, "from-query", ExtractAPIKey(c))
	})

	t.Run("non-bearer authorization is ignored", func(t *testing.T) {
		c := newContext(func(r *http.Request) {
			r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})
		assert.Equal(t, "from-query", ExtractAPIKey(c))
	})
}
