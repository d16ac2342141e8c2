package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Forensic report status values.
const (
	ReportPending   = "pending"
	ReportCompleted = "completed"
	ReportReviewed  = "reviewed"
)

// ForensicReport documents lab findings for a crime. CrimeID is an opaque
// reference; it is not checked against the crimes table.
type ForensicReport struct {
	Record
	CaseNumber string   `gorm:"column:case_number;uniqueIndex;not null" json:"caseNumber"`
	CrimeID    string   `gorm:"column:crime_id;not null" json:"crimeId"`
	ReportDate Date     `gorm:"column:report_date" json:"reportDate"`
	Findings   string   `gorm:"column:findings;not null" json:"findings"`
	Evidence   []string `gorm:"column:evidence;serializer:json" json:"evidence"`
	Analyst    string   `gorm:"column:analyst;not null" json:"analyst"`
	Status     string   `gorm:"column:status" json:"status"`
}

func (ForensicReport) TableName() string { return "forensic_reports" }

func (r *ForensicReport) BeforeCreate(tx *gorm.DB) error {
	if err := r.Record.BeforeCreate(tx); err != nil {
		return err
	}
	if r.ReportDate.IsZero() {
		r.ReportDate = Now()
	}
	return nil
}

// Validate applies defaults and checks required fields and enums.
func (r *ForensicReport) Validate() error {
	if r.Status == "" {
		r.Status = ReportPending
	}
	if r.CaseNumber == "" {
		return fmt.Errorf("caseNumber is required")
	}
	if r.CrimeID == "" {
		return fmt.Errorf("crimeId is required")
	}
	if r.Findings == "" {
		return fmt.Errorf("findings is required")
	}
	if r.Analyst == "" {
		return fmt.Errorf("analyst is required")
	}
	if !oneOf(r.Status, ReportPending, ReportCompleted, ReportReviewed) {
		return fmt.Errorf("status must be one of %s, %s, %s", ReportPending, ReportCompleted, ReportReviewed)
	}
	return nil
}
