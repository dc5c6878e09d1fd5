package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pracaboard/job-offer-api/internal/dtos"
	"github.com/pracaboard/job-offer-api/internal/services"
)

type OfferHandler struct {
	OfferService *services.OfferService
}

// NewOfferHandler creates the handler with dependencies
func NewOfferHandler(s *services.OfferService) *OfferHandler {
	return &OfferHandler{OfferService: s}
}

// ListOffers is the GET /job-offers endpoint (management listing).
func (h *OfferHandler) ListOffers(c *gin.Context) {
	h.renderListing(c)
}

// BrowseOffers is the GET /offers endpoint (public browsing). Same payload
// as the management listing, mounted outside the managed group.
func (h *OfferHandler) BrowseOffers(c *gin.Context) {
	h.renderListing(c)
}

func (h *OfferHandler) renderListing(c *gin.Context) {
	filter := parseFilter(c)

	offers, err := h.OfferService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list job offers: " + err.Error()})
		return
	}

	categories, locations, err := h.OfferService.FilterOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load filter options: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.NewOfferListResponse(offers, filter, categories, locations))
}

// CreateOffer is the POST /job-offers endpoint.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	req, ok := bindOffer(c)
	if !ok {
		return
	}

	if _, err := h.OfferService.Create(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job offer: " + err.Error()})
		return
	}

	h.redirectToListing(c)
}

// UpdateOffer is the PUT /job-offers/:id endpoint. All six fields are
// replaced on success.
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	req, ok := bindOffer(c)
	if !ok {
		return
	}

	if _, err := h.OfferService.Update(c.Param("id"), req); err != nil {
		if errors.Is(err, services.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update job offer: " + err.Error()})
		return
	}

	h.redirectToListing(c)
}

// DeleteOffer is the DELETE /job-offers/:id endpoint.
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.OfferService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete job offer: " + err.Error()})
		return
	}

	h.redirectToListing(c)
}

// redirectToListing sends the caller back to the listing with its filter
// triple intact, so a mutation never loses the filtered context.
func (h *OfferHandler) redirectToListing(c *gin.Context) {
	filter := parseFilter(c)

	params := url.Values{}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Location != "" {
		params.Set("location", filter.Location)
	}

	target := "/api/v1/job-offers"
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect(http.StatusSeeOther, target)
}

// bindOffer parses and validates a mutation body. Validation failures answer
// 422 with field-level messages; a body that is not valid JSON answers 400.
// Either way the request has had no side effect yet.
func bindOffer(c *gin.Context) (*dtos.OfferMutationRequest, bool) {
	var req dtos.OfferMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": dtos.FieldErrors(verrs)})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		}
		return nil, false
	}
	return &req, true
}

// parseFilter reads the filter triple from the query string. Mutations carry
// the triple the same way as reads, which keeps it apart from the offer's own
// category field in the body.
func parseFilter(c *gin.Context) dtos.OfferFilter {
	var filter dtos.OfferFilter
	// Three plain string fields with no validation tags: this bind cannot fail
	_ = c.ShouldBindQuery(&filter)
	filter.Trim()
	return filter
}
