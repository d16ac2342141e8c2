package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skar710/CID/internal/models"
)

// EvidenceService layers the custody-log rules over the generic engine.
// The chain of custody is server-owned: creates discard any client-sent
// chain before seeding the collection event, and appends happen only
// through AddCustodyEvent.
type EvidenceService interface {
	RecordService[models.Evidence]
	// AddCustodyEvent appends one (handler, action) entry stamped with
	// the current time and returns the updated record.
	AddCustodyEvent(ctx context.Context, id, handler, action string) (*models.Evidence, error)
}

type evidenceService struct {
	RecordService[models.Evidence]
	db *gorm.DB
}

// NewEvidenceService injects the *gorm.DB and returns a ready-to-use
// EvidenceService.
func NewEvidenceService(db *gorm.DB) EvidenceService {
	return &evidenceService{
		RecordService: NewRecordService[models.Evidence](db),
		db:            db,
	}
}

// Create drops whatever chain the client sent; the model's create hook
// then seeds the log with the collection event.
func (s *evidenceService) Create(ctx context.Context, e *models.Evidence) error {
	e.ChainOfCustody = nil
	return s.RecordService.Create(ctx, e)
}

func (s *evidenceService) AddCustodyEvent(ctx context.Context, id, handler, action string) (*models.Evidence, error) {
	if handler == "" {
		return nil, fmt.Errorf("%w: handler is required", ErrValidation)
	}
	if action == "" {
		return nil, fmt.Errorf("%w: action is required", ErrValidation)
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.ChainOfCustody = append(e.ChainOfCustody, models.CustodyEvent{
		Handler:   handler,
		Action:    action,
		Timestamp: models.Now(),
	})
	if err := s.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
