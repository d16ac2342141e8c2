package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Evidence status values.
const (
	EvidenceProcessing = "processing"
	EvidenceAnalyzed   = "analyzed"
	EvidenceStored     = "stored"
	EvidenceDisposed   = "disposed"
)

// ActionCollected is the custody action seeded when evidence enters the system.
const ActionCollected = "collected"

// CustodyEvent is one entry in an evidence item's append-only custody log,
// oldest first. The log is owned by the server; clients can only append
// through the dedicated custody endpoint.
type CustodyEvent struct {
	Handler   string `json:"handler"`
	Action    string `json:"action"`
	Timestamp Date   `json:"timestamp"`
}

// Evidence is a collected item tied to a case.
type Evidence struct {
	Record
	CaseNumber      string         `gorm:"column:case_number;not null" json:"caseNumber"`
	Type            string         `gorm:"column:type;not null" json:"type"`
	Description     string         `gorm:"column:description;not null" json:"description"`
	Location        string         `gorm:"column:location;not null" json:"location"`
	CollectedBy     string         `gorm:"column:collected_by;not null" json:"collectedBy"`
	CollectionDate  Date           `gorm:"column:collection_date" json:"collectionDate"`
	Status          string         `gorm:"column:status" json:"status"`
	AnalysisResults string         `gorm:"column:analysis_results" json:"analysisResults"`
	ChainOfCustody  []CustodyEvent `gorm:"column:chain_of_custody;serializer:json" json:"chainOfCustody"`
}

func (Evidence) TableName() string { return "evidence" }

// BeforeCreate seeds the custody log with the collection event.
func (e *Evidence) BeforeCreate(tx *gorm.DB) error {
	if err := e.Record.BeforeCreate(tx); err != nil {
		return err
	}
	if len(e.ChainOfCustody) == 0 {
		ts := e.CollectionDate
		if ts.IsZero() {
			ts = Now()
		}
		e.ChainOfCustody = []CustodyEvent{{
			Handler:   e.CollectedBy,
			Action:    ActionCollected,
			Timestamp: ts,
		}}
	}
	return nil
}

// Validate applies defaults and checks required fields and enums.
func (e *Evidence) Validate() error {
	if e.Status == "" {
		e.Status = EvidenceProcessing
	}
	if e.CaseNumber == "" {
		return fmt.Errorf("caseNumber is required")
	}
	if e.Type == "" {
		return fmt.Errorf("type is required")
	}
	if _, ok := EvidenceVariant(e.Type); !ok {
		return fmt.Errorf("type must be one of %s", JoinList(EvidenceTypes()))
	}
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if e.Location == "" {
		return fmt.Errorf("location is required")
	}
	if e.CollectedBy == "" {
		return fmt.Errorf("collectedBy is required")
	}
	if e.CollectionDate.IsZero() {
		return fmt.Errorf("collectionDate is required")
	}
	if !oneOf(e.Status, EvidenceProcessing, EvidenceAnalyzed, EvidenceStored, EvidenceDisposed) {
		return fmt.Errorf("status must be one of %s, %s, %s, %s", EvidenceProcessing, EvidenceAnalyzed, EvidenceStored, EvidenceDisposed)
	}
	return nil
}
