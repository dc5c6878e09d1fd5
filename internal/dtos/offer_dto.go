package dtos

import (
	"strings"
	"time"

	"github.com/pracaboard/job-offer-api/internal/models"
)

// OfferFilter is the filter triple scoping a listing query. It is parsed from
// the query string on reads and carried through mutation redirects so the
// caller keeps its filtered context.
type OfferFilter struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
	Location string `form:"location" json:"location"`
}

// Trim normalizes the filter values; an empty value means no constraint.
func (f *OfferFilter) Trim() {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	f.Location = strings.TrimSpace(f.Location)
}

// OfferMutationRequest is the body of both create and update. Updates replace
// all six fields, so the same shape serves both.
type OfferMutationRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Company  string `json:"company" binding:"required,max=255"`
	Category string `json:"category" binding:"required,max=255"`
	Location string `json:"location" binding:"required,max=255"`

	// Optional Fields
	Salary      string `json:"salary" binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// OfferView is the subset of a stored offer exposed to the front-end.
type OfferView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewOfferView(o *models.JobOffer) OfferView {
	return OfferView{
		ID:          o.ID,
		Title:       o.Title,
		Company:     o.Company,
		Category:    o.Category,
		Location:    o.Location,
		Salary:      o.Salary,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

// OfferListResponse is the listing payload: matched offers, the echoed filter
// triple and the two filter-option vocabularies.
type OfferListResponse struct {
	Offers     []OfferView `json:"offers"`
	Filters    OfferFilter `json:"filters"`
	Categories []string    `json:"categories"`
	Locations  []string    `json:"locations"`
}

func NewOfferListResponse(offers []models.JobOffer, filter OfferFilter, categories, locations []string) OfferListResponse {
	views := make([]OfferView, 0, len(offers))
	for i := range offers {
		views = append(views, NewOfferView(&offers[i]))
	}
	if categories == nil {
		categories = []string{}
	}
	if locations == nil {
		locations = []string{}
	}
	return OfferListResponse{
		Offers:     views,
		Filters:    filter,
		Categories: categories,
		Locations:  locations,
	}
}
