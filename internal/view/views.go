package view

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Skar710/CID/internal/models"
)

// Drafts hold form-shaped values: everything is a string until submit,
// and comma-separated fields are split at the boundary.

// Field is one rendered form field: its wire name and the draft's
// current value for it.
type Field struct {
	Name  string
	Value string
}

func variantFields(v models.Variant, values map[string]string) []Field {
	fields := make([]Field, 0, len(v.Fields))
	for _, name := range v.Fields {
		fields = append(fields, Field{Name: name, Value: values[name]})
	}
	return fields
}

// CrimeDraft backs the dashboard's create/edit crime form.
type CrimeDraft struct {
	Type        string
	Longitude   string
	Latitude    string
	Date        string
	Description string
	Status      string
}

func (d CrimeDraft) toRecord() (models.Crime, error) {
	var rec models.Crime
	date, err := models.ParseDate(d.Date)
	if err != nil {
		return rec, err
	}
	rec = models.Crime{
		Type:        d.Type,
		Date:        date,
		Description: d.Description,
		Status:      d.Status,
	}
	if d.Longitude != "" || d.Latitude != "" {
		lon, err := strconv.ParseFloat(d.Longitude, 64)
		if err != nil {
			return rec, fmt.Errorf("bad longitude %q", d.Longitude)
		}
		lat, err := strconv.ParseFloat(d.Latitude, 64)
		if err != nil {
			return rec, fmt.Errorf("bad latitude %q", d.Latitude)
		}
		rec.Location = models.Point{Type: "Point", Coordinates: []float64{lon, lat}}
	}
	return rec, nil
}

func crimeDraft(rec models.Crime) CrimeDraft {
	d := CrimeDraft{
		Type:        rec.Type,
		Date:        formatDate(rec.Date),
		Description: rec.Description,
		Status:      rec.Status,
	}
	if len(rec.Location.Coordinates) == 2 {
		d.Longitude = strconv.FormatFloat(rec.Location.Coordinates[0], 'f', -1, 64)
		d.Latitude = strconv.FormatFloat(rec.Location.Coordinates[1], 'f', -1, 64)
	}
	return d
}

// NewCrimesView builds the crimes page state. No search box.
func NewCrimesView(c *Client) *View[models.Crime, CrimeDraft] {
	return NewView(c, "crimes", Spec[models.Crime, CrimeDraft]{
		NewDraft:   func() CrimeDraft { return CrimeDraft{Status: models.CrimeReported} },
		ToRecord:   CrimeDraft.toRecord,
		FromRecord: crimeDraft,
		ID:         func(r models.Crime) string { return r.ID },
	})
}

// CriminalDraft backs the criminals page form.
type CriminalDraft struct {
	Name                   string
	Alias                  string
	DateOfBirth            string
	Nationality            string
	Status                 string
	DangerLevel            string
	LastKnownLocation      string
	AssociatedCrimes       string
	Height                 string
	Weight                 string
	DistinguishingFeatures string
}

func (d CriminalDraft) toRecord() (models.Criminal, error) {
	dob, err := models.ParseDate(d.DateOfBirth)
	if err != nil {
		return models.Criminal{}, err
	}
	return models.Criminal{
		Name:              d.Name,
		Alias:             models.SplitList(d.Alias),
		DateOfBirth:       dob,
		Nationality:       d.Nationality,
		Status:            d.Status,
		DangerLevel:       d.DangerLevel,
		LastKnownLocation: d.LastKnownLocation,
		AssociatedCrimes:  models.SplitList(d.AssociatedCrimes),
		PhysicalDescription: models.PhysicalDescription{
			Height:                 d.Height,
			Weight:                 d.Weight,
			DistinguishingFeatures: models.SplitList(d.DistinguishingFeatures),
		},
	}, nil
}

func criminalDraft(rec models.Criminal) CriminalDraft {
	return CriminalDraft{
		Name:                   rec.Name,
		Alias:                  models.JoinList(rec.Alias),
		DateOfBirth:            formatDate(rec.DateOfBirth),
		Nationality:            rec.Nationality,
		Status:                 rec.Status,
		DangerLevel:            rec.DangerLevel,
		LastKnownLocation:      rec.LastKnownLocation,
		AssociatedCrimes:       models.JoinList(rec.AssociatedCrimes),
		Height:                 rec.PhysicalDescription.Height,
		Weight:                 rec.PhysicalDescription.Weight,
		DistinguishingFeatures: models.JoinList(rec.PhysicalDescription.DistinguishingFeatures),
	}
}

// NewCriminalsView builds the criminals page state.
func NewCriminalsView(c *Client) *View[models.Criminal, CriminalDraft] {
	return NewView(c, "criminals", Spec[models.Criminal, CriminalDraft]{
		NewDraft: func() CriminalDraft {
			return CriminalDraft{Status: models.CriminalAtLarge, DangerLevel: models.DangerLow}
		},
		ToRecord:   CriminalDraft.toRecord,
		FromRecord: criminalDraft,
		ID:         func(r models.Criminal) string { return r.ID },
		SearchText: func(r models.Criminal) []string {
			fields := []string{r.Name, r.Nationality, r.LastKnownLocation}
			fields = append(fields, r.Alias...)
			fields = append(fields, r.AssociatedCrimes...)
			return fields
		},
	})
}

// EvidenceDraft backs the evidence page form. The custody chain has no
// draft field: it is server-owned and grows only through AddCustody.
type EvidenceDraft struct {
	CaseNumber      string
	Type            string
	Description     string
	Location        string
	CollectedBy     string
	CollectionDate  string
	Status          string
	AnalysisResults string
}

func (d EvidenceDraft) toRecord() (models.Evidence, error) {
	date, err := models.ParseDate(d.CollectionDate)
	if err != nil {
		return models.Evidence{}, err
	}
	return models.Evidence{
		CaseNumber:      d.CaseNumber,
		Type:            d.Type,
		Description:     d.Description,
		Location:        d.Location,
		CollectedBy:     d.CollectedBy,
		CollectionDate:  date,
		Status:          d.Status,
		AnalysisResults: d.AnalysisResults,
	}, nil
}

// DetailFields returns the display label and the detail fields the
// evidence form renders for the draft's current type tag. Unregistered
// tags render no detail section.
func (d EvidenceDraft) DetailFields() (string, []Field) {
	v, ok := models.EvidenceVariant(d.Type)
	if !ok {
		return "", nil
	}
	return v.Label, variantFields(v, map[string]string{
		"location":        d.Location,
		"collectedBy":     d.CollectedBy,
		"collectionDate":  d.CollectionDate,
		"status":          d.Status,
		"analysisResults": d.AnalysisResults,
	})
}

func evidenceDraft(rec models.Evidence) EvidenceDraft {
	return EvidenceDraft{
		CaseNumber:      rec.CaseNumber,
		Type:            rec.Type,
		Description:     rec.Description,
		Location:        rec.Location,
		CollectedBy:     rec.CollectedBy,
		CollectionDate:  formatDate(rec.CollectionDate),
		Status:          rec.Status,
		AnalysisResults: rec.AnalysisResults,
	}
}

// EvidenceView wraps the generic page state with the custody append
// action.
type EvidenceView struct {
	*View[models.Evidence, EvidenceDraft]
	client *Client
}

// NewEvidenceView builds the evidence page state.
func NewEvidenceView(c *Client) *EvidenceView {
	inner := NewView(c, "evidence", Spec[models.Evidence, EvidenceDraft]{
		NewDraft: func() EvidenceDraft {
			return EvidenceDraft{Type: "physical", Status: models.EvidenceProcessing}
		},
		ToRecord:   EvidenceDraft.toRecord,
		FromRecord: evidenceDraft,
		ID:         func(r models.Evidence) string { return r.ID },
		SearchText: func(r models.Evidence) []string {
			return []string{r.CaseNumber, r.Type, r.Description, r.Location, r.CollectedBy}
		},
	})
	return &EvidenceView{View: inner, client: c}
}

// AddCustody appends a custody event and refetches the collection.
func (v *EvidenceView) AddCustody(ctx context.Context, id, handler, action string) error {
	if _, err := v.client.AddCustodyEvent(ctx, id, handler, action); err != nil {
		return v.fail(err)
	}
	return v.Refresh(ctx)
}

// ForensicDraft backs the forensics page form.
type ForensicDraft struct {
	CaseNumber string
	CrimeID    string
	ReportDate string
	Findings   string
	Evidence   string
	Analyst    string
	Status     string
}

func (d ForensicDraft) toRecord() (models.ForensicReport, error) {
	date, err := models.ParseDate(d.ReportDate)
	if err != nil {
		return models.ForensicReport{}, err
	}
	return models.ForensicReport{
		CaseNumber: d.CaseNumber,
		CrimeID:    d.CrimeID,
		ReportDate: date,
		Findings:   d.Findings,
		Evidence:   models.SplitList(d.Evidence),
		Analyst:    d.Analyst,
		Status:     d.Status,
	}, nil
}

func forensicDraft(rec models.ForensicReport) ForensicDraft {
	return ForensicDraft{
		CaseNumber: rec.CaseNumber,
		CrimeID:    rec.CrimeID,
		ReportDate: formatDate(rec.ReportDate),
		Findings:   rec.Findings,
		Evidence:   models.JoinList(rec.Evidence),
		Analyst:    rec.Analyst,
		Status:     rec.Status,
	}
}

// NewForensicsView builds the forensics page state. No search box.
func NewForensicsView(c *Client) *View[models.ForensicReport, ForensicDraft] {
	return NewView(c, "forensics", Spec[models.ForensicReport, ForensicDraft]{
		NewDraft:   func() ForensicDraft { return ForensicDraft{Status: models.ReportPending} },
		ToRecord:   ForensicDraft.toRecord,
		FromRecord: forensicDraft,
		ID:         func(r models.ForensicReport) string { return r.ID },
	})
}

// MemberDraft is one row of the team form's member list.
type MemberDraft struct {
	Name           string
	Role           string
	Specialization string
	Email          string
	Phone          string
	Location       string
	Status         string
}

// TeamDraft backs the teams page form.
type TeamDraft struct {
	Name        string
	Leader      string
	Department  string
	ActiveCases string
	Members     []MemberDraft
}

func (d TeamDraft) toRecord() (models.Team, error) {
	rec := models.Team{
		Name:       d.Name,
		Leader:     d.Leader,
		Department: d.Department,
	}
	if d.ActiveCases != "" {
		n, err := strconv.Atoi(d.ActiveCases)
		if err != nil {
			return rec, fmt.Errorf("bad active case count %q", d.ActiveCases)
		}
		rec.ActiveCases = n
	}
	for _, m := range d.Members {
		rec.Members = append(rec.Members, models.TeamMember{
			Name:           m.Name,
			Role:           m.Role,
			Specialization: m.Specialization,
			Contact:        models.Contact{Email: m.Email, Phone: m.Phone},
			Location:       m.Location,
			Status:         m.Status,
		})
	}
	return rec, nil
}

func teamDraft(rec models.Team) TeamDraft {
	d := TeamDraft{
		Name:        rec.Name,
		Leader:      rec.Leader,
		Department:  rec.Department,
		ActiveCases: strconv.Itoa(rec.ActiveCases),
	}
	for _, m := range rec.Members {
		d.Members = append(d.Members, MemberDraft{
			Name:           m.Name,
			Role:           m.Role,
			Specialization: m.Specialization,
			Email:          m.Contact.Email,
			Phone:          m.Contact.Phone,
			Location:       m.Location,
			Status:         m.Status,
		})
	}
	return d
}

// NewTeamsView builds the teams page state. No search box.
func NewTeamsView(c *Client) *View[models.Team, TeamDraft] {
	return NewView(c, "teams", Spec[models.Team, TeamDraft]{
		NewDraft:   func() TeamDraft { return TeamDraft{ActiveCases: "0"} },
		ToRecord:   TeamDraft.toRecord,
		FromRecord: teamDraft,
		ID:         func(r models.Team) string { return r.ID },
	})
}

// IntelligenceDraft backs the intelligence page form.
type IntelligenceDraft struct {
	Title          string
	Type           string
	Content        string
	Source         string
	Reliability    string
	Classification string
	DateReceived   string
	Analyst        string
	RelatedCases   string
	Tags           string
	Status         string
}

func (d IntelligenceDraft) toRecord() (models.IntelligenceReport, error) {
	date, err := models.ParseDate(d.DateReceived)
	if err != nil {
		return models.IntelligenceReport{}, err
	}
	return models.IntelligenceReport{
		Title:          d.Title,
		Type:           d.Type,
		Content:        d.Content,
		Source:         d.Source,
		Reliability:    d.Reliability,
		Classification: d.Classification,
		DateReceived:   date,
		Analyst:        d.Analyst,
		RelatedCases:   models.SplitList(d.RelatedCases),
		Tags:           models.SplitList(d.Tags),
		Status:         d.Status,
	}, nil
}

// DetailFields returns the display label and the detail fields the
// intelligence form renders for the draft's current type tag.
func (d IntelligenceDraft) DetailFields() (string, []Field) {
	v, ok := models.IntelligenceVariant(d.Type)
	if !ok {
		return "", nil
	}
	return v.Label, variantFields(v, map[string]string{
		"source":         d.Source,
		"reliability":    d.Reliability,
		"classification": d.Classification,
		"analyst":        d.Analyst,
		"relatedCases":   d.RelatedCases,
		"tags":           d.Tags,
	})
}

func intelligenceDraft(rec models.IntelligenceReport) IntelligenceDraft {
	return IntelligenceDraft{
		Title:          rec.Title,
		Type:           rec.Type,
		Content:        rec.Content,
		Source:         rec.Source,
		Reliability:    rec.Reliability,
		Classification: rec.Classification,
		DateReceived:   formatDate(rec.DateReceived),
		Analyst:        rec.Analyst,
		RelatedCases:   models.JoinList(rec.RelatedCases),
		Tags:           models.JoinList(rec.Tags),
		Status:         rec.Status,
	}
}

// NewIntelligenceView builds the intelligence page state.
func NewIntelligenceView(c *Client) *View[models.IntelligenceReport, IntelligenceDraft] {
	return NewView(c, "intelligence", Spec[models.IntelligenceReport, IntelligenceDraft]{
		NewDraft: func() IntelligenceDraft {
			return IntelligenceDraft{
				Type:           "tactical",
				Reliability:    models.ReliabilityPossible,
				Classification: models.ClassConfidential,
				Status:         models.IntelActive,
			}
		},
		ToRecord:   IntelligenceDraft.toRecord,
		FromRecord: intelligenceDraft,
		ID:         func(r models.IntelligenceReport) string { return r.ID },
		SearchText: func(r models.IntelligenceReport) []string {
			fields := []string{r.Title, r.Content, r.Source, r.Analyst}
			fields = append(fields, r.Tags...)
			return fields
		},
	})
}

func formatDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}
