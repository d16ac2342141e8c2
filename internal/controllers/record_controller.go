package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skar710/CID/internal/services"
)

// identified is satisfied by every model through the embedded
// models.Record.
type identified interface {
	PrimaryID() string
	SetPrimaryID(string)
}

// RecordController serves the four CRUD routes for one entity type:
//
//	GET    /<path>      list all
//	POST   /<path>      create
//	PUT    /<path>/:id  update by id
//	DELETE /<path>/:id  delete by id
//
// All four go through the same id/existence/validation checks in the
// record service, whatever the entity.
type RecordController[T any] struct {
	svc   services.RecordService[T]
	path  string
	label string

	// BeforeSave, when set, runs on update after the request body has
	// been bound over the stored record and may restore server-owned
	// fields from the stored copy.
	BeforeSave func(stored, incoming *T)
}

// NewRecordController wires a record service to its route segment and
// the label used in error messages ("Criminal", "Report", ...).
func NewRecordController[T any](svc services.RecordService[T], path, label string) *RecordController[T] {
	return &RecordController[T]{svc: svc, path: path, label: label}
}

// Register attaches the CRUD routes to a group that already carries the
// auth gate.
func (ct *RecordController[T]) Register(g *echo.Group) {
	g.GET("/"+ct.path, ct.List)
	g.POST("/"+ct.path, ct.Create)
	g.PUT("/"+ct.path+"/:id", ct.Update)
	g.DELETE("/"+ct.path+"/:id", ct.Delete)
}

func (ct *RecordController[T]) List(c echo.Context) error {
	recs, err := ct.svc.List(c.Request().Context())
	if err != nil {
		return ct.writeError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

func (ct *RecordController[T]) Create(c echo.Context) error {
	rec := new(T)
	if err := c.Bind(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := ct.svc.Create(c.Request().Context(), rec); err != nil {
		return ct.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// Update loads the stored record and binds the body over it, so fields
// the payload omits keep their stored values.
func (ct *RecordController[T]) Update(c echo.Context) error {
	id := c.Param("id")
	rec, err := ct.svc.Get(c.Request().Context(), id)
	if err != nil {
		return ct.writeError(c, err)
	}
	stored, err := cloneRecord(rec)
	if err != nil {
		return ct.writeError(c, err)
	}
	if err := c.Bind(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if ident, ok := any(rec).(identified); ok {
		ident.SetPrimaryID(id)
	}
	if ct.BeforeSave != nil {
		ct.BeforeSave(stored, rec)
	}
	if err := ct.svc.Save(c.Request().Context(), rec); err != nil {
		return ct.writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (ct *RecordController[T]) Delete(c echo.Context) error {
	if err := ct.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return ct.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": ct.label + " deleted successfully"})
}

// cloneRecord deep-copies a record through its JSON form. A plain
// struct copy is not enough for the update snapshot: decoding a body
// into the loaded record reuses slice backing arrays, so a shallow
// copy would see client-written elements in server-owned fields.
func cloneRecord[T any](rec *T) (*T, error) {
	blob, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(blob, out); err != nil {
		return nil, err
	}
	return out, nil
}

// writeError maps the service taxonomy onto HTTP statuses. Unexpected
// errors are logged and collapsed to an opaque 500 so internal detail
// never reaches the caller.
func (ct *RecordController[T]) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid " + strings.ToLower(ct.label) + " ID"})
	case errors.Is(err, services.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"message": ct.label + " not found"})
	case errors.Is(err, services.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"message": ct.label + " already exists"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal server error"})
	}
}
