package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type inquiryRequest struct {
	Content string `json:"content" binding:"required"`
}

// @Summary      Send an inquiry on a listing
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path   int             true  "Listing id"
// @Param        body  body   inquiryRequest  true  "Message"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/listings/{id}/inquiries [post]
// @Security     SessionAuth
func (h *Handler) addInquiry(c *gin.Context) {
	listingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req inquiryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Inquiries.Add(c.Request.Context(), callerID(c), listingID, req.Content)
	if err != nil {
		h.respondServiceError(c, "inquiry_add_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Delete an inquiry
// @Description  Only the original sender may delete.
// @Tags         inquiries
// @Produce      json
// @Param        id  path  int  true  "Inquiry id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/inquiries/{id} [delete]
// @Security     SessionAuth
func (h *Handler) deleteInquiry(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Inquiries.Delete(c.Request.Context(), callerID(c), id); err != nil {
		h.respondServiceError(c, "inquiry_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
