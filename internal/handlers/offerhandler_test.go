package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/pracaboard/job-offer-api/internal/dtos"
	"github.com/pracaboard/job-offer-api/internal/models"
	"github.com/pracaboard/job-offer-api/internal/services"
	"github.com/pracaboard/job-offer-api/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.OfferService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "offers.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.JobOffer{}))

	offerService := services.NewOfferService(db, logging.New("error"))
	offerHandler := NewOfferHandler(offerService)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/health", HealthCheck)
	api.GET("/offers", offerHandler.BrowseOffers)
	api.GET("/job-offers", offerHandler.ListOffers)
	api.POST("/job-offers", offerHandler.CreateOffer)
	api.PUT("/job-offers/:id", offerHandler.UpdateOffer)
	api.DELETE("/job-offers/:id", offerHandler.DeleteOffer)

	return r, offerService
}

func seedOffer(t *testing.T, s *services.OfferService, req dtos.OfferMutationRequest) *models.JobOffer {
	t.Helper()
	offer, err := s.Create(&req)
	require.NoError(t, err)
	return offer
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListingPayloadShape(t *testing.T) {
	r, s := newTestRouter(t)

	seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "Frontend React", Company: "Blue Pixel", Category: "IT", Location: "Kraków",
		Salary: "12 000 - 16 000 PLN", Description: "Rozwój aplikacji webowych.",
	})
	seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "SEO Specialist", Company: "MarketBoost", Category: "Marketing", Location: "Wrocław",
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/job-offers?category=IT", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dtos.OfferListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "Frontend React", resp.Offers[0].Title)
	assert.NotEmpty(t, resp.Offers[0].ID)
	assert.False(t, resp.Offers[0].CreatedAt.IsZero())

	assert.Equal(t, "IT", resp.Filters.Category)
	assert.Empty(t, resp.Filters.Search)

	// Vocabularies reflect the full table, not the filtered subset
	assert.Equal(t, []string{"IT", "Marketing"}, resp.Categories)
	assert.Equal(t, []string{"Kraków", "Wrocław"}, resp.Locations)
}

func TestBrowseSharesListingContract(t *testing.T) {
	r, s := newTestRouter(t)

	seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "Senior PHP Developer", Company: "Blue Pixel", Category: "IT", Location: "Kraków",
		Description: "Budowa API.",
	})
	seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "Specjalista HR", Company: "MarketBoost", Category: "HR", Location: "Warszawa",
		Description: "Rekrutacja.",
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/offers?search=PHP", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dtos.OfferListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "Senior PHP Developer", resp.Offers[0].Title)
	assert.Equal(t, "PHP", resp.Filters.Search)
}

func TestFilterValuesAreTrimmed(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/offers?search=%20%20PHP%20%20", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dtos.OfferListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PHP", resp.Filters.Search)
}

func TestCreateRedirectsWithFilterTriple(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/job-offers?search=react&category=IT&location=Krak%C3%B3w", dtos.OfferMutationRequest{
		Title: "Frontend React", Company: "Blue Pixel", Category: "IT", Location: "Kraków",
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/job-offers?category=IT&location=Krak%C3%B3w&search=react", w.Header().Get("Location"))

	offers, err := s.List(dtos.OfferFilter{})
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}

func TestCreateValidationFailureHasNoSideEffect(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/job-offers", map[string]string{
		"company":  "Blue Pixel",
		"category": "IT",
		"location": "Kraków",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "title")

	offers, err := s.List(dtos.OfferFilter{})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestCreateRejectsOverlongFields(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/job-offers", dtos.OfferMutationRequest{
		Title:       strings.Repeat("a", 256),
		Company:     "Blue Pixel",
		Category:    "IT",
		Location:    "Kraków",
		Description: strings.Repeat("b", 2001),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors["title"], "255")
	assert.Contains(t, resp.Errors["description"], "2000")

	offers, err := s.List(dtos.OfferFilter{})
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestUpdateRedirectsAndNotFound(t *testing.T) {
	r, s := newTestRouter(t)

	created := seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "Frontend React", Company: "Blue Pixel", Category: "IT", Location: "Kraków",
	})

	body := dtos.OfferMutationRequest{
		Title: "Backend Go", Company: "CloudForge", Category: "IT", Location: "Warszawa",
	}

	w := doJSON(t, r, http.MethodPut, "/api/v1/job-offers/"+created.ID+"?search=go", body)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/job-offers?search=go", w.Header().Get("Location"))

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Go", got.Title)

	w = doJSON(t, r, http.MethodPut, "/api/v1/job-offers/missing-id", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRedirectsAndNotFound(t *testing.T) {
	r, s := newTestRouter(t)

	created := seedOffer(t, s, dtos.OfferMutationRequest{
		Title: "Frontend React", Company: "Blue Pixel", Category: "IT", Location: "Kraków",
	})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/job-offers/"+created.ID+"?location=Krak%C3%B3w", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/v1/job-offers?location=Krak%C3%B3w", w.Header().Get("Location"))

	w = doJSON(t, r, http.MethodDelete, "/api/v1/job-offers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
