package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appgateway "github.com/codatendechat/gateway/internal/application/gateway"
	"github.com/codatendechat/gateway/internal/domain/gateway"
)

// Auditor records one audit entry per request, best-effort
type Auditor interface {
	Record(entry *gateway.ApiLogEntry)
}

// auditSkipPaths are served without authentication and never audited
var auditSkipPaths = map[string]bool{
	"/":     true,
	"/docs": true,
}

// Audit records every API request in the audit trail. It must run before
// APIKeyAuth so that rejected requests are captured too; the entry picks up
// whatever identity the auth middleware managed to resolve, including the
// token behind an expired key.
//
// Request bodies are captured for mutating methods only and sanitized before
// they reach the trail. Response bodies are condensed to a summary.
func Audit(auditor Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auditSkipPaths[c.Request.URL.Path] || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		requestBody := captureRequestBody(c)

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		entry := &gateway.ApiLogEntry{
			Endpoint:       c.Request.URL.Path,
			Method:         c.Request.Method,
			RequestBody:    requestBody,
			ResponseStatus: c.Writer.Status(),
			ResponseBody:   appgateway.SummarizeResponse(c.Writer.Status(), writer.body.Bytes()),
			IPAddress:      clientIP(c),
			UserAgent:      c.Request.UserAgent(),
			DurationMs:     time.Since(start).Milliseconds(),
		}
		if token := GetApiToken(c); token != nil {
			entry.CompanyID = &token.CompanyID
			entry.ApiTokenID = &token.ID
		}

		auditor.Record(entry)
	}
}

// captureRequestBody reads and restores the request body for mutating
// methods. The captured copy is sanitized; a malformed or absent body is
// recorded as an empty object.
func captureRequestBody(c *gin.Context) []byte {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil
	}

	var raw []byte
	if c.Request.Body != nil {
		raw, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	}
	return appgateway.SanitizeJSON(raw)
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection's remote address.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.ClientIP()
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
