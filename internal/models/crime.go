package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Crime status values.
const (
	CrimeReported      = "reported"
	CrimeInvestigating = "investigating"
	CrimeSolved        = "solved"
)

// Point is a GeoJSON-style location. Coordinates are [longitude, latitude].
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Crime is a reported offence, plotted on the dashboard map.
type Crime struct {
	Record
	Type        string    `gorm:"column:type;not null" json:"type"`
	Location    Point     `gorm:"column:location;serializer:json" json:"location"`
	Date        Date      `gorm:"column:date" json:"date"`
	Description string    `gorm:"column:description" json:"description"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Crime) TableName() string { return "crimes" }

func (c *Crime) BeforeCreate(tx *gorm.DB) error {
	if err := c.Record.BeforeCreate(tx); err != nil {
		return err
	}
	if c.Location.Type == "" {
		c.Location.Type = "Point"
	}
	return nil
}

// Validate applies defaults and checks required fields and enums.
func (c *Crime) Validate() error {
	if c.Status == "" {
		c.Status = CrimeReported
	}
	if c.Type == "" {
		return fmt.Errorf("type is required")
	}
	if c.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !oneOf(c.Status, CrimeReported, CrimeInvestigating, CrimeSolved) {
		return fmt.Errorf("status must be one of %s, %s, %s", CrimeReported, CrimeInvestigating, CrimeSolved)
	}
	return nil
}
