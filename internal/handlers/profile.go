package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Public user profile
// @Description  User row plus listing stats, authored-inquiry total and the user's listings (newest first).
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]interface{}  "user, stats, inquiry_total, listings"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/users/{id} [get]
func (h *Handler) getProfile(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := h.services.Profiles.Get(ctx, id)
	if err != nil {
		h.respondServiceError(c, "profile_get_failed", err)
		return
	}
	stats, err := h.services.Profiles.Stats(ctx, id)
	if err != nil {
		h.respondServiceError(c, "profile_stats_failed", err)
		return
	}
	inquiryTotal, err := h.services.Profiles.InquiryTotal(ctx, id)
	if err != nil {
		h.respondServiceError(c, "profile_inquiry_total_failed", err)
		return
	}
	listings, err := h.services.Profiles.Listings(ctx, id)
	if err != nil {
		h.respondServiceError(c, "profile_listings_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"stats":         stats,
		"inquiry_total": inquiryTotal,
		"listings":      listings,
	})
}
