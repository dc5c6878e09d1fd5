package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobOffer is a single posting on the board. Deletion is physical, so there
// is no DeletedAt column.
type JobOffer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title    string `gorm:"not null;size:255" json:"title"`
	Company  string `gorm:"not null;size:255" json:"company"`
	Category string `gorm:"not null;size:255" json:"category"`
	Location string `gorm:"not null;size:255" json:"location"`

	// Optional fields, stored as empty strings when absent
	Salary      string `gorm:"size:255" json:"salary"`
	Description string `gorm:"size:2000" json:"description"`
}

// BeforeCreate assigns an opaque identifier before the row is written.
func (o *JobOffer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
