package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"classifieds/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMsgNotFound       = "not found"
	errMsgForbidden      = "forbidden"
	errMsgUnauthorized   = "authentication required"
	errMsgBadCredentials = "invalid credentials"
	errMsgInternal       = "internal error"
)

// respondServiceError maps an error from the service layer to an HTTP status.
// Validation messages pass through verbatim; internal failures get a generic
// message and a structured log entry.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errMsgNotFound})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": errMsgForbidden})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMsgBadCredentials})
	case errors.Is(err, service.ErrInvalidSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMsgUnauthorized})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err, "path", c.FullPath())
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errMsgInternal})
	}
}

// idParam parses a positive integer path parameter; writes a 400 and returns
// false on garbage.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
