package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Intelligence reliability grades.
const (
	ReliabilityConfirmed = "confirmed"
	ReliabilityProbable  = "probable"
	ReliabilityPossible  = "possible"
	ReliabilityDoubtful  = "doubtful"
)

// Intelligence classification levels.
const (
	ClassConfidential = "confidential"
	ClassSecret       = "secret"
	ClassTopSecret    = "top-secret"
)

// Intelligence report status values.
const (
	IntelActive        = "active"
	IntelArchived      = "archived"
	IntelPendingReview = "pending-review"
)

// IntelligenceReport is an analyst-filed report. Listings come back
// newest-received-first.
type IntelligenceReport struct {
	Record
	Title          string   `gorm:"column:title;not null" json:"title"`
	Type           string   `gorm:"column:type;not null" json:"type"`
	Content        string   `gorm:"column:content;not null" json:"content"`
	Source         string   `gorm:"column:source;not null" json:"source"`
	Reliability    string   `gorm:"column:reliability;not null" json:"reliability"`
	Classification string   `gorm:"column:classification" json:"classification"`
	DateReceived   Date     `gorm:"column:date_received" json:"dateReceived"`
	Analyst        string   `gorm:"column:analyst;not null" json:"analyst"`
	RelatedCases   []string `gorm:"column:related_cases;serializer:json" json:"relatedCases"`
	Status         string   `gorm:"column:status" json:"status"`
	Tags           []string `gorm:"column:tags;serializer:json" json:"tags"`
	LastUpdated    Date     `gorm:"column:last_updated" json:"lastUpdated"`
}

func (IntelligenceReport) TableName() string { return "intelligence_reports" }

// DefaultOrder lists reports newest-received-first.
func (IntelligenceReport) DefaultOrder() string { return "date_received DESC" }

func (r *IntelligenceReport) BeforeCreate(tx *gorm.DB) error {
	if err := r.Record.BeforeCreate(tx); err != nil {
		return err
	}
	if r.DateReceived.IsZero() {
		r.DateReceived = Now()
	}
	return nil
}

// BeforeSave stamps lastUpdated on every write, whatever fields changed.
func (r *IntelligenceReport) BeforeSave(tx *gorm.DB) error {
	r.LastUpdated = Now()
	return nil
}

// Validate applies defaults and checks required fields and enums.
func (r *IntelligenceReport) Validate() error {
	if r.Classification == "" {
		r.Classification = ClassConfidential
	}
	if r.Status == "" {
		r.Status = IntelActive
	}
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Type == "" {
		return fmt.Errorf("type is required")
	}
	if _, ok := IntelligenceVariant(r.Type); !ok {
		return fmt.Errorf("type must be one of %s", JoinList(IntelligenceTypes()))
	}
	if r.Content == "" {
		return fmt.Errorf("content is required")
	}
	if r.Source == "" {
		return fmt.Errorf("source is required")
	}
	if r.Analyst == "" {
		return fmt.Errorf("analyst is required")
	}
	if !oneOf(r.Reliability, ReliabilityConfirmed, ReliabilityProbable, ReliabilityPossible, ReliabilityDoubtful) {
		return fmt.Errorf("reliability must be one of %s, %s, %s, %s", ReliabilityConfirmed, ReliabilityProbable, ReliabilityPossible, ReliabilityDoubtful)
	}
	if !oneOf(r.Classification, ClassConfidential, ClassSecret, ClassTopSecret) {
		return fmt.Errorf("classification must be one of %s, %s, %s", ClassConfidential, ClassSecret, ClassTopSecret)
	}
	if !oneOf(r.Status, IntelActive, IntelArchived, IntelPendingReview) {
		return fmt.Errorf("status must be one of %s, %s, %s", IntelActive, IntelArchived, IntelPendingReview)
	}
	return nil
}
