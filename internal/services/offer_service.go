package services

import (
	"errors"
	"fmt"

	"github.com/pracaboard/job-offer-api/internal/dtos"
	"github.com/pracaboard/job-offer-api/internal/models"
	"github.com/pracaboard/job-offer-api/pkg/logging"
	"gorm.io/gorm"
)

// ErrOfferNotFound is returned when an identifier does not resolve to a
// stored offer.
var ErrOfferNotFound = errors.New("job offer not found")

type OfferService struct {
	DB  *gorm.DB
	Log *logging.Logger
}

func NewOfferService(db *gorm.DB, log *logging.Logger) *OfferService {
	return &OfferService{
		DB:  db,
		Log: log,
	}
}

// List returns the offers matching the filter triple, newest first. Each
// filter is independent: search is a case-insensitive substring match against
// title or description, category and location match exactly as stored, and
// active filters combine with AND. An empty result is a valid result.
func (s *OfferService) List(filter dtos.OfferFilter) ([]models.JobOffer, error) {
	query := s.DB.Model(&models.JobOffer{})

	if filter.Search != "" {
		op := s.searchOperator()
		pattern := "%" + filter.Search + "%"
		// Parenthesized so the OR never swallows the other filters
		query = query.Where(
			fmt.Sprintf("(title %s ? OR description %s ?)", op, op),
			pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}

	var offers []models.JobOffer
	if err := query.Order("created_at DESC").Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Get looks up a single offer by identifier.
func (s *OfferService) Get(id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := s.DB.First(&offer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// Create persists a new offer from an already-validated request and assigns
// its identifier and creation timestamp.
func (s *OfferService) Create(req *dtos.OfferMutationRequest) (*models.JobOffer, error) {
	offer := &models.JobOffer{
		Title:       req.Title,
		Company:     req.Company,
		Category:    req.Category,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
	}
	if err := s.DB.Create(offer).Error; err != nil {
		return nil, err
	}
	s.Log.Info("job offer created", "id", offer.ID, "title", offer.Title)
	return offer, nil
}

// Update replaces all six mutable fields of the addressed offer. It is a full
// replace, not a merge: optional fields submitted empty are cleared.
func (s *OfferService) Update(id string, req *dtos.OfferMutationRequest) (*models.JobOffer, error) {
	offer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	offer.Title = req.Title
	offer.Company = req.Company
	offer.Category = req.Category
	offer.Location = req.Location
	offer.Salary = req.Salary
	offer.Description = req.Description

	if err := s.DB.Save(offer).Error; err != nil {
		return nil, err
	}
	s.Log.Info("job offer updated", "id", offer.ID)
	return offer, nil
}

// Delete removes the addressed offer permanently. Deleting an unknown id
// fails with ErrOfferNotFound, every time.
func (s *OfferService) Delete(id string) error {
	res := s.DB.Delete(&models.JobOffer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	s.Log.Info("job offer deleted", "id", id)
	return nil
}

// FilterOptions returns the distinct non-empty category and location values
// currently in storage, sorted ascending. Read fresh on every call so the
// vocabularies never go stale.
func (s *OfferService) FilterOptions() (categories, locations []string, err error) {
	if categories, err = s.distinctValues("category"); err != nil {
		return nil, nil, err
	}
	if locations, err = s.distinctValues("location"); err != nil {
		return nil, nil, err
	}
	return categories, locations, nil
}

func (s *OfferService) distinctValues(column string) ([]string, error) {
	var values []string
	err := s.DB.Model(&models.JobOffer{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Postgres has a dedicated case-insensitive LIKE; elsewhere plain LIKE is
// already case-insensitive for ASCII.
func (s *OfferService) searchOperator() string {
	if s.DB.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}
