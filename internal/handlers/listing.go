package handlers

import (
	"net/http"
	"strconv"

	"classifieds/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO shared by listing create and update.
type listingRequest struct {
	Title       string `json:"title" binding:"required"`
	Location    string `json:"location" binding:"required"`
	PriceEUR    int    `json:"price_eur"`
	Description string `json:"description" binding:"required"`
}

func (r listingRequest) toInput() service.ListingInput {
	return service.ListingInput{
		Title:       r.Title,
		Location:    r.Location,
		PriceEUR:    r.PriceEUR,
		Description: r.Description,
	}
}

type setCategoriesRequest struct {
	CategoryIDs []int `json:"category_ids"`
}

// @Summary      Search listings
// @Description  Case-insensitive substring match on title/location; optional category filter. Both combine with AND. No filters returns the full catalogue, newest first.
// @Tags         listings
// @Produce      json
// @Param        q         query  string  false  "Search text"
// @Param        category  query  int     false  "Category id"
// @Success      200  {object}  map[string]interface{}  "count, listings"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/listings [get]
func (h *Handler) searchListings(c *gin.Context) {
	categoryID := 0
	if qs := c.Query("category"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		categoryID = v
	}

	listings, err := h.services.Listings.Search(c.Request.Context(), c.Query("q"), categoryID)
	if err != nil {
		h.respondServiceError(c, "listing_search_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(listings), "listings": listings})
}

// @Summary      Get one listing
// @Description  Listing with owner username, categories and inquiries (newest first).
// @Tags         listings
// @Produce      json
// @Param        id  path  int  true  "Listing id"
// @Success      200  {object}  map[string]interface{}  "listing, inquiries"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/listings/{id} [get]
func (h *Handler) getListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	detail, err := h.services.Listings.Get(ctx, id)
	if err != nil {
		h.respondServiceError(c, "listing_get_failed", err)
		return
	}
	inquiries, err := h.services.Inquiries.ListForListing(ctx, id)
	if err != nil {
		h.respondServiceError(c, "listing_inquiries_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": detail, "inquiries": inquiries})
}

// @Summary      List categories
// @Tags         listings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	cats, err := h.services.Listings.Categories(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "categories_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// @Summary      Create a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        body  body   listingRequest  true  "Listing payload"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/v1/listings [post]
// @Security     SessionAuth
func (h *Handler) createListing(c *gin.Context) {
	var req listingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Listings.Create(c.Request.Context(), callerID(c), req.toInput())
	if err != nil {
		h.respondServiceError(c, "listing_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Update a listing
// @Description  Only the owner may update; others get 403.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id    path   int             true  "Listing id"
// @Param        body  body   listingRequest  true  "Listing payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/listings/{id} [put]
// @Security     SessionAuth
func (h *Handler) updateListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req listingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Listings.Update(c.Request.Context(), callerID(c), id, req.toInput()); err != nil {
		h.respondServiceError(c, "listing_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary      Delete a listing
// @Description  Only the owner may delete. Category links and inquiries cascade.
// @Tags         listings
// @Produce      json
// @Param        id  path  int  true  "Listing id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/listings/{id} [delete]
// @Security     SessionAuth
func (h *Handler) deleteListing(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Listings.Delete(c.Request.Context(), callerID(c), id); err != nil {
		h.respondServiceError(c, "listing_delete_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// @Summary      Replace a listing's categories
// @Description  Atomic replacement of the full set; duplicate ids are ignored.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id    path   int                   true  "Listing id"
// @Param        body  body   setCategoriesRequest  true  "Category ids"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/listings/{id}/categories [put]
// @Security     SessionAuth
func (h *Handler) setListingCategories(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req setCategoriesRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Listings.SetCategories(c.Request.Context(), callerID(c), id, req.CategoryIDs); err != nil {
		h.respondServiceError(c, "listing_set_categories_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "categories_set"})
}
