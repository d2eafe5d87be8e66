package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"classifieds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey    = "userId"
	csrfTokenKey = "csrfToken"
	sessTokenKey = "sessionToken"
	requestIDKey = "requestId"

	sessionCookieName = "session_token"
	csrfHeaderName    = "X-CSRF-Token"
	requestIDHeader   = "X-Request-ID"
)

// sessionToken pulls the session token from the cookie or, failing that, a
// Bearer Authorization header.
func sessionToken(c *gin.Context) string {
	if tok, err := c.Cookie(sessionCookieName); err == nil && tok != "" {
		return tok
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// sessionMiddleware resolves the caller's session and stores identity and
// CSRF token in the request context.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsgUnauthorized})
		return
	}

	sess, err := h.services.Auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		h.abortAuthError(c, err)
		return
	}

	c.Set(userIDKey, sess.UserID)
	c.Set(csrfTokenKey, sess.CSRFToken)
	c.Set(sessTokenKey, sess.Token)
	c.Next()
}

func (h *Handler) abortAuthError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidSession) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errMsgUnauthorized})
		return
	}
	if h.log != nil {
		h.log.Errorw("session_resolve_failed", "err", err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errMsgInternal})
}

// csrfMiddleware rejects any state-changing request whose submitted token
// does not match the session's stored one. Runs after sessionMiddleware and
// before the data layer is touched.
func (h *Handler) csrfMiddleware(c *gin.Context) {
	want := c.GetString(csrfTokenKey)
	got := c.GetHeader(csrfHeaderName)
	if !service.CSRFTokenMatches(want, got) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "csrf token missing or mismatched"})
		return
	}
	c.Next()
}

// requestIDMiddleware echoes or mints an X-Request-ID for correlation.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Set(requestIDKey, rid)
		c.Next()
	}
}

// accessLogMiddleware writes one structured line per request.
func (h *Handler) accessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if h.log == nil {
			return
		}
		h.log.Infow("http_request",
			"rid", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)
	}
}

// callerID returns the authenticated user id set by sessionMiddleware.
func callerID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
