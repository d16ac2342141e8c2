package models

import "fmt"

// Criminal status values.
const (
	CriminalAtLarge   = "at-large"
	CriminalInCustody = "in-custody"
	CriminalDeceased  = "deceased"
)

// Danger levels.
const (
	DangerLow    = "low"
	DangerMedium = "medium"
	DangerHigh   = "high"
)

// PhysicalDescription is the nested description block on a criminal record.
type PhysicalDescription struct {
	Height                 string   `json:"height"`
	Weight                 string   `json:"weight"`
	DistinguishingFeatures []string `json:"distinguishingFeatures"`
}

// Criminal is a person of interest.
type Criminal struct {
	Record
	Name                string              `gorm:"column:name;not null" json:"name"`
	Alias               []string            `gorm:"column:alias;serializer:json" json:"alias"`
	DateOfBirth         Date                `gorm:"column:date_of_birth" json:"dateOfBirth"`
	Nationality         string              `gorm:"column:nationality" json:"nationality"`
	Status              string              `gorm:"column:status" json:"status"`
	DangerLevel         string              `gorm:"column:danger_level;not null" json:"dangerLevel"`
	LastKnownLocation   string              `gorm:"column:last_known_location" json:"lastKnownLocation"`
	AssociatedCrimes    []string            `gorm:"column:associated_crimes;serializer:json" json:"associatedCrimes"`
	PhysicalDescription PhysicalDescription `gorm:"column:physical_description;serializer:json" json:"physicalDescription"`
}

func (Criminal) TableName() string { return "criminals" }

// Validate applies defaults and checks required fields and enums.
func (c *Criminal) Validate() error {
	if c.Status == "" {
		c.Status = CriminalAtLarge
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.DangerLevel == "" {
		return fmt.Errorf("dangerLevel is required")
	}
	if !oneOf(c.Status, CriminalAtLarge, CriminalInCustody, CriminalDeceased) {
		return fmt.Errorf("status must be one of %s, %s, %s", CriminalAtLarge, CriminalInCustody, CriminalDeceased)
	}
	if !oneOf(c.DangerLevel, DangerLow, DangerMedium, DangerHigh) {
		return fmt.Errorf("dangerLevel must be one of %s, %s, %s", DangerLow, DangerMedium, DangerHigh)
	}
	return nil
}
