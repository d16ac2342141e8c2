package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator is implemented by every record model; Validate applies
// entity defaults and rejects missing required fields and bad enums.
type Validator interface {
	Validate() error
}

// orderer lets a model pick its listing order. Models without it come
// back in store-native (insertion) order.
type orderer interface {
	DefaultOrder() string
}

// RecordService is the generic CRUD engine every entity type
// instantiates. The id, existence and validation checks are uniform
// across entities so no route silently skips them.
type RecordService[T any] interface {
	// List returns every record of the entity type. No pagination,
	// no server-side filtering.
	List(ctx context.Context) ([]T, error)
	// Create validates and stores a new record, assigning its id.
	Create(ctx context.Context, rec *T) error
	// Get loads one record. ErrInvalidID for a malformed id,
	// ErrNotFound when it resolves to nothing.
	Get(ctx context.Context, id string) (*T, error)
	// Save validates and writes back a loaded record in full.
	Save(ctx context.Context, rec *T) error
	// Delete removes a record, ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}

// recordService is the GORM-backed implementation.
type recordService[T any] struct {
	db *gorm.DB
}

// NewRecordService injects the *gorm.DB and returns a ready-to-use
// RecordService for the entity type.
func NewRecordService[T any](db *gorm.DB) RecordService[T] {
	return &recordService[T]{db: db}
}

func (s *recordService[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	q := s.db.WithContext(ctx)
	if o, ok := any(new(T)).(orderer); ok {
		q = q.Order(o.DefaultOrder())
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *recordService[T]) Create(ctx context.Context, rec *T) error {
	if err := validate(rec); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *recordService[T]) Get(ctx context.Context, id string) (*T, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidID
	}
	rec := new(T)
	err := s.db.WithContext(ctx).First(rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService[T]) Save(ctx context.Context, rec *T) error {
	if err := validate(rec); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *recordService[T]) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidID
	}
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func validate(rec any) error {
	if v, ok := rec.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return nil
}

// translate maps driver errors onto the service taxonomy. Requires the
// DB to be opened with gorm.Config{TranslateError: true}.
func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
