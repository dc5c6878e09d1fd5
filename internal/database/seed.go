package database

import (
	"github.com/pracaboard/job-offer-api/internal/models"
	"gorm.io/gorm"
)

// Seed fills the database with a ready-to-test job offers set. Existing rows
// are left untouched; the seed set is only added to an empty table.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.JobOffer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	offers := []models.JobOffer{
		{
			Title:       "Frontend Developer React",
			Company:     "Blue Pixel",
			Category:    "IT",
			Location:    "Kraków",
			Salary:      "12 000 - 16 000 PLN",
			Description: "Rozwój aplikacji webowych w React i TypeScript.",
		},
		{
			Title:       "Backend Developer Go",
			Company:     "CloudForge",
			Category:    "IT",
			Location:    "Warszawa",
			Salary:      "14 000 - 20 000 PLN",
			Description: "Tworzenie API REST w Go oraz integracje z PostgreSQL.",
		},
		{
			Title:       "Specjalista SEO",
			Company:     "MarketBoost",
			Category:    "Marketing",
			Location:    "Wrocław",
			Salary:      "7 000 - 10 000 PLN",
			Description: "Optymalizacja treści i analiza widoczności organicznej.",
		},
		{
			Title:       "Performance Marketing Manager",
			Company:     "AdSpark",
			Category:    "Marketing",
			Location:    "Zdalnie",
			Salary:      "10 000 - 14 000 PLN",
			Description: "Prowadzenie kampanii płatnych i optymalizacja ROI.",
		},
		{
			Title:       "Regional Sales Manager",
			Company:     "SellUp",
			Category:    "Sprzedaż",
			Location:    "Kraków",
			Salary:      "9 000 - 13 000 PLN + premia",
			Description: "Rozwój sprzedaży B2B i budowanie relacji z klientami.",
		},
		{
			Title:       "Account Executive",
			Company:     "BizFlow",
			Category:    "Sprzedaż",
			Location:    "Warszawa",
			Salary:      "8 000 - 12 000 PLN + prowizja",
			Description: "Pozyskiwanie klientów i prowadzenie procesu sprzedażowego.",
		},
		{
			Title:       "Analityk Finansowy",
			Company:     "FinScope",
			Category:    "Finanse",
			Location:    "Wrocław",
			Salary:      "9 000 - 12 500 PLN",
			Description: "Analiza wyników finansowych i przygotowywanie raportów.",
		},
		{
			Title:       "Kontroler Finansowy",
			Company:     "LedgerPoint",
			Category:    "Finanse",
			Location:    "Zdalnie",
			Salary:      "11 000 - 15 000 PLN",
			Description: "Nadzór nad budżetem oraz kontrola kosztów operacyjnych.",
		},
	}

	for i := range offers {
		if err := db.Create(&offers[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
