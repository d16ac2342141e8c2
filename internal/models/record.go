package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record carries the store-assigned identifier shared by every entity.
// Identifiers are set once on create and never reassigned.
type Record struct {
	ID string `gorm:"column:id;primaryKey;size:36" json:"id"`
}

// BeforeCreate assigns a fresh UUID when the record has none yet.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// PrimaryID returns the record identifier.
func (r *Record) PrimaryID() string { return r.ID }

// SetPrimaryID overwrites the identifier. Handlers use it to pin the
// route id back onto a record after binding a request body, so a body
// that smuggles an "id" field cannot re-key the record.
func (r *Record) SetPrimaryID(id string) { r.ID = id }
