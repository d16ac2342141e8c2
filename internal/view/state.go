package view

import (
	"context"
	"errors"
	"strings"
)

// Spec describes one record page: how to make an empty create draft,
// how drafts convert to records and back, where a record's id lives,
// and which field values the search box matches against. SearchText
// nil means the page has no search box.
type Spec[T any, D any] struct {
	NewDraft   func() D
	ToRecord   func(D) (T, error)
	FromRecord func(T) D
	ID         func(T) string
	SearchText func(T) []string
}

// Edit is the single in-progress edit draft, keyed by record id.
type Edit[D any] struct {
	ID    string
	Draft D
}

// View is the state one record page owns: the last-fetched collection
// (replaced wholesale on every refresh), the create draft, and at most
// one edit draft. Mutations never update the collection optimistically;
// each one is followed by a fresh fetch. Any failed call raises a
// blocking notice and leaves all prior state untouched.
type View[T any, D any] struct {
	client *Client
	path   string
	spec   Spec[T, D]

	records []T
	create  D
	edit    *Edit[D]
	notice  string
}

// NewView builds the page state around a client and a route segment
// like "criminals".
func NewView[T any, D any](client *Client, path string, spec Spec[T, D]) *View[T, D] {
	return &View[T, D]{
		client: client,
		path:   path,
		spec:   spec,
		create: spec.NewDraft(),
	}
}

// Records returns the last-fetched collection.
func (v *View[T, D]) Records() []T { return v.records }

// CreateDraft exposes the pending create form for field edits.
func (v *View[T, D]) CreateDraft() *D { return &v.create }

// Editing returns the open edit, or nil.
func (v *View[T, D]) Editing() *Edit[D] { return v.edit }

// Notice returns the blocking error notice, empty when none.
func (v *View[T, D]) Notice() string { return v.notice }

// ClearNotice dismisses the notice.
func (v *View[T, D]) ClearNotice() { v.notice = "" }

// Refresh replaces the collection with a fresh fetch.
func (v *View[T, D]) Refresh(ctx context.Context) error {
	recs, err := List[T](ctx, v.client, v.path)
	if err != nil {
		return v.fail(err)
	}
	v.records = recs
	return nil
}

// SubmitCreate sends the create draft. On success the draft resets to
// defaults and the collection is refetched; on failure the draft stays
// as typed so the user can retry.
func (v *View[T, D]) SubmitCreate(ctx context.Context) error {
	rec, err := v.spec.ToRecord(v.create)
	if err != nil {
		return v.fail(err)
	}
	if _, err := Create[T](ctx, v.client, v.path, rec); err != nil {
		return v.fail(err)
	}
	v.create = v.spec.NewDraft()
	return v.Refresh(ctx)
}

// BeginEdit opens an edit draft for the given record. Any unsaved edit
// on a different record is discarded. Returns false when the id is not
// in the fetched collection.
func (v *View[T, D]) BeginEdit(id string) bool {
	for _, rec := range v.records {
		if v.spec.ID(rec) == id {
			v.edit = &Edit[D]{ID: id, Draft: v.spec.FromRecord(rec)}
			return true
		}
	}
	return false
}

// EditDraft exposes the open edit form for field edits, nil when no
// edit is open.
func (v *View[T, D]) EditDraft() *D {
	if v.edit == nil {
		return nil
	}
	return &v.edit.Draft
}

// CancelEdit discards the open edit.
func (v *View[T, D]) CancelEdit() { v.edit = nil }

// SubmitEdit sends the open edit. On success the edit closes and the
// collection is refetched; on failure the draft stays open.
func (v *View[T, D]) SubmitEdit(ctx context.Context) error {
	if v.edit == nil {
		return nil
	}
	rec, err := v.spec.ToRecord(v.edit.Draft)
	if err != nil {
		return v.fail(err)
	}
	if _, err := Update[T](ctx, v.client, v.path, v.edit.ID, rec); err != nil {
		return v.fail(err)
	}
	v.edit = nil
	return v.Refresh(ctx)
}

// Delete removes a record and refetches. An open edit on the deleted
// record is discarded.
func (v *View[T, D]) Delete(ctx context.Context, id string) error {
	if err := Delete(ctx, v.client, v.path, id); err != nil {
		return v.fail(err)
	}
	if v.edit != nil && v.edit.ID == id {
		v.edit = nil
	}
	return v.Refresh(ctx)
}

// Filtered narrows the fetched collection by a case-insensitive
// substring match over the page's search fields. It never triggers a
// fetch. Pages without search fields return the collection unchanged.
func (v *View[T, D]) Filtered(term string) []T {
	if term == "" || v.spec.SearchText == nil {
		return v.records
	}
	needle := strings.ToLower(term)
	var out []T
	for _, rec := range v.records {
		for _, field := range v.spec.SearchText(rec) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func (v *View[T, D]) fail(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		v.notice = apiErr.Message
	} else {
		v.notice = err.Error()
	}
	return err
}
