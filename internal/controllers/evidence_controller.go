package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skar710/CID/internal/models"
	"github.com/Skar710/CID/internal/services"
)

// EvidenceController adds the custody-log route on top of the generic
// CRUD set. Updates can never rewrite the chain of custody: the stored
// chain is restored after binding, and the only way to grow it is the
// dedicated append endpoint.
type EvidenceController struct {
	*RecordController[models.Evidence]
	svc services.EvidenceService
}

// NewEvidenceController wires the evidence service into its controller.
func NewEvidenceController(svc services.EvidenceService) *EvidenceController {
	base := NewRecordController[models.Evidence](svc, "evidence", "Evidence")
	base.BeforeSave = func(stored, incoming *models.Evidence) {
		incoming.ChainOfCustody = stored.ChainOfCustody
	}
	return &EvidenceController{RecordController: base, svc: svc}
}

// Register attaches the CRUD routes plus the custody append route.
func (ct *EvidenceController) Register(g *echo.Group) {
	ct.RecordController.Register(g)
	g.POST("/evidence/:id/custody", ct.AddCustodyEvent)
}

type custodyRequest struct {
	Handler string `json:"handler"`
	Action  string `json:"action"`
}

// AddCustodyEvent handles POST /evidence/:id/custody. The event is
// stamped with the server time and appended after the existing entries.
func (ct *EvidenceController) AddCustodyEvent(c echo.Context) error {
	req := new(custodyRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	e, err := ct.svc.AddCustodyEvent(c.Request().Context(), c.Param("id"), req.Handler, req.Action)
	if err != nil {
		return ct.writeError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}
