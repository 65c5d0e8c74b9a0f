package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/tokens"
)

const (
	requestIDKey    = "request_id"
	sessionKey      = "session"
	requestIDHeader = "X-Request-ID"
)

// SessionVerifier validates bearer tokens.
type SessionVerifier interface {
	Verify(token string) (*tokens.Session, error)
}

// RequestLogger assigns a request id and logs each request when it finishes.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", id,
		)
	}
}

// Recovery turns panics into a 500 response and logs them.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	})
}

// Authenticate requires "Authorization: Bearer <token>" and stores the
// session on the context.
func Authenticate(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: msgUnauthorized})
			return
		}

		session, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: msgUnauthorized})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session stored by Authenticate.
func SessionFrom(c *gin.Context) (*tokens.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*tokens.Session)
	return session, ok
}
