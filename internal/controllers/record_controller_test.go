package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Skar710/CID/internal/auth"
	"github.com/Skar710/CID/internal/models"
	"github.com/Skar710/CID/internal/services"
)

const testSecret = "test-secret"

// newTestApp wires the full API over an in-memory SQLite store, the
// same way cmd/server does.
func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Crime{},
		&models.Criminal{},
		&models.Evidence{},
		&models.ForensicReport{},
		&models.Team{},
		&models.IntelligenceReport{},
	); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	tokens := auth.NewManager(testSecret, time.Hour)

	e := echo.New()
	api := e.Group("/api")
	NewAuthController(services.NewAuthService(db, tokens)).Register(api)

	records := api.Group("", auth.Middleware(tokens))
	NewRecordController(services.NewRecordService[models.Crime](db), "crimes", "Crime").Register(records)
	NewRecordController(services.NewRecordService[models.Criminal](db), "criminals", "Criminal").Register(records)
	NewEvidenceController(services.NewEvidenceService(db)).Register(records)
	NewRecordController(services.NewRecordService[models.ForensicReport](db), "forensics", "Report").Register(records)
	NewRecordController(services.NewRecordService[models.Team](db), "teams", "Team").Register(records)
	NewRecordController(services.NewRecordService[models.IntelligenceReport](db), "intelligence", "Intelligence report").Register(records)
	return e
}

// request runs one JSON request against the app and decodes the
// response body into out when non-nil.
func request(t *testing.T, e *echo.Echo, method, path, token string, body, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q failed: %v", rec.Body.String(), err)
		}
	}
	return rec.Code
}

// login registers a fresh account and returns its token.
func login(t *testing.T, e *echo.Echo) string {
	t.Helper()
	creds := map[string]string{"email": "user@x.com", "password": "pw123"}
	if code := request(t, e, http.MethodPost, "/api/register", "", creds, nil); code != http.StatusCreated {
		t.Fatalf("register returned %d", code)
	}
	var out struct {
		Token string `json:"token"`
	}
	if code := request(t, e, http.MethodPost, "/api/login", "", creds, &out); code != http.StatusOK {
		t.Fatalf("login returned %d", code)
	}
	if out.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return out.Token
}

// TestAuthGate verifies the 401/403 split on record routes.
func TestAuthGate(t *testing.T) {
	e := newTestApp(t)

	if code := request(t, e, http.MethodGet, "/api/crimes", "", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("no header: got %d, want 401", code)
	}

	foreign, err := auth.NewManager("some-other-key", time.Hour).Issue("u", "u@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if code := request(t, e, http.MethodGet, "/api/crimes", foreign, nil, nil); code != http.StatusForbidden {
		t.Errorf("foreign signature: got %d, want 403", code)
	}

	token := login(t, e)
	if code := request(t, e, http.MethodGet, "/api/crimes", token, nil, nil); code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", code)
	}
}

// TestCriminalScenario walks the register → login → create → list flow.
func TestCriminalScenario(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	payload := map[string]any{
		"name":        "J. Doe",
		"dangerLevel": "high",
		"alias":       []string{"The Ghost"},
	}
	var created models.Criminal
	if code := request(t, e, http.MethodPost, "/api/criminals", token, payload, &created); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}

	var listed []models.Criminal
	if code := request(t, e, http.MethodGet, "/api/criminals", token, nil, &listed); code != http.StatusOK {
		t.Fatalf("list returned %d", code)
	}
	if len(listed) != 1 || listed[0].ID != created.ID || listed[0].DangerLevel != models.DangerHigh {
		t.Errorf("listed collection does not include the created record: %+v", listed)
	}
}

// TestUpdateById verifies partial updates, malformed ids and unknown
// ids across entity types.
func TestUpdateById(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	var created models.Crime
	payload := map[string]any{
		"type":        "burglary",
		"date":        "2024-03-01",
		"description": "broken window",
		"location":    map[string]any{"type": "Point", "coordinates": []float64{-46.6, -23.5}},
	}
	if code := request(t, e, http.MethodPost, "/api/crimes", token, payload, &created); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}

	var updated models.Crime
	patch := map[string]any{"status": "investigating"}
	if code := request(t, e, http.MethodPut, "/api/crimes/"+created.ID, token, patch, &updated); code != http.StatusOK {
		t.Fatalf("update returned %d", code)
	}
	if updated.Status != models.CrimeInvestigating {
		t.Errorf("patched field not updated: %q", updated.Status)
	}
	if updated.Type != "burglary" || updated.Description != "broken window" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if len(updated.Location.Coordinates) != 2 {
		t.Errorf("location lost on partial update: %+v", updated.Location)
	}

	if code := request(t, e, http.MethodPut, "/api/crimes/nonsense", token, patch, nil); code != http.StatusBadRequest {
		t.Errorf("malformed id: got %d, want 400", code)
	}
	if code := request(t, e, http.MethodPut, "/api/crimes/7b0d8cb9-47ea-41a9-a3cc-9a0ba6a41f29", token, patch, nil); code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", code)
	}
}

// TestDeleteById verifies delete acknowledges once and 404s after.
func TestDeleteById(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	var created models.Team
	payload := map[string]any{"name": "Night Watch", "leader": "Cpt. Vimes", "department": "Homicide"}
	if code := request(t, e, http.MethodPost, "/api/teams", token, payload, &created); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}

	var ack map[string]string
	if code := request(t, e, http.MethodDelete, "/api/teams/"+created.ID, token, nil, &ack); code != http.StatusOK {
		t.Fatalf("delete returned %d", code)
	}
	if ack["message"] == "" {
		t.Error("expected an acknowledgement message")
	}
	if code := request(t, e, http.MethodDelete, "/api/teams/"+created.ID, token, nil, nil); code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", code)
	}

	var listed []models.Team
	if code := request(t, e, http.MethodGet, "/api/teams", token, nil, &listed); code != http.StatusOK {
		t.Fatalf("list returned %d", code)
	}
	if len(listed) != 0 {
		t.Errorf("expected empty collection, got %d records", len(listed))
	}
}

// TestEvidenceCustodyOverHTTP verifies the chain cannot be truncated by
// an update and grows only through the custody endpoint.
func TestEvidenceCustodyOverHTTP(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	var created models.Evidence
	payload := map[string]any{
		"caseNumber":     "CASE-042",
		"type":           "physical",
		"description":    "9mm casing",
		"location":       "warehouse 7",
		"collectedBy":    "Off. Lane",
		"collectionDate": "2024-02-10",
	}
	if code := request(t, e, http.MethodPost, "/api/evidence", token, payload, &created); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}
	if len(created.ChainOfCustody) != 1 || created.ChainOfCustody[0].Action != models.ActionCollected {
		t.Fatalf("expected seeded custody log, got %+v", created.ChainOfCustody)
	}

	// A client omitting the chain on update must not truncate it.
	var updated models.Evidence
	patch := map[string]any{"status": "analyzed", "chainOfCustody": []any{}}
	if code := request(t, e, http.MethodPut, "/api/evidence/"+created.ID, token, patch, &updated); code != http.StatusOK {
		t.Fatalf("update returned %d", code)
	}
	if updated.Status != models.EvidenceAnalyzed {
		t.Errorf("patched field not updated: %q", updated.Status)
	}
	if len(updated.ChainOfCustody) != 1 {
		t.Errorf("update truncated the custody log: %+v", updated.ChainOfCustody)
	}

	var appended models.Evidence
	event := map[string]string{"handler": "Dr. Wu", "action": "analyzed"}
	if code := request(t, e, http.MethodPost, "/api/evidence/"+created.ID+"/custody", token, event, &appended); code != http.StatusOK {
		t.Fatalf("custody append returned %d", code)
	}
	if len(appended.ChainOfCustody) != 2 || appended.ChainOfCustody[1].Handler != "Dr. Wu" {
		t.Errorf("expected appended event, got %+v", appended.ChainOfCustody)
	}
}

// TestEvidenceCustodyRewriteBlocked verifies a fabricated chain in the
// update payload can neither replace nor rewrite the stored entries.
func TestEvidenceCustodyRewriteBlocked(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	var created models.Evidence
	payload := map[string]any{
		"caseNumber":     "CASE-042",
		"type":           "physical",
		"description":    "9mm casing",
		"location":       "warehouse 7",
		"collectedBy":    "Off. Lane",
		"collectionDate": "2024-02-10",
	}
	if code := request(t, e, http.MethodPost, "/api/evidence", token, payload, &created); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}

	var updated models.Evidence
	patch := map[string]any{
		"status": "analyzed",
		"chainOfCustody": []map[string]string{
			{"handler": "intruder", "action": "tampered", "timestamp": "2020-01-01"},
		},
	}
	if code := request(t, e, http.MethodPut, "/api/evidence/"+created.ID, token, patch, &updated); code != http.StatusOK {
		t.Fatalf("update returned %d", code)
	}
	if len(updated.ChainOfCustody) != 1 {
		t.Fatalf("update payload changed the custody log length: %+v", updated.ChainOfCustody)
	}
	if got := updated.ChainOfCustody[0]; got.Handler != "Off. Lane" || got.Action != models.ActionCollected {
		t.Errorf("update payload rewrote the seeded event: %+v", got)
	}

	// The stored copy must match what the update returned.
	var listed []models.Evidence
	if code := request(t, e, http.MethodGet, "/api/evidence", token, nil, &listed); code != http.StatusOK {
		t.Fatalf("list returned %d", code)
	}
	if len(listed) != 1 || len(listed[0].ChainOfCustody) != 1 || listed[0].ChainOfCustody[0].Handler != "Off. Lane" {
		t.Errorf("stored custody log corrupted: %+v", listed)
	}
}

// TestForensicConflict verifies the unique case number maps to 409.
func TestForensicConflict(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	payload := map[string]any{
		"caseNumber": "CASE-001",
		"crimeId":    "7b0d8cb9-47ea-41a9-a3cc-9a0ba6a41f29",
		"findings":   "fibers",
		"analyst":    "Dr. Reed",
	}
	if code := request(t, e, http.MethodPost, "/api/forensics", token, payload, nil); code != http.StatusCreated {
		t.Fatalf("create returned %d", code)
	}
	if code := request(t, e, http.MethodPost, "/api/forensics", token, payload, nil); code != http.StatusConflict {
		t.Errorf("duplicate case number: got %d, want 409", code)
	}
}

// TestAuthRoutes covers register conflict and login failure bodies.
func TestAuthRoutes(t *testing.T) {
	e := newTestApp(t)
	creds := map[string]string{"email": "user@x.com", "password": "pw123"}

	if code := request(t, e, http.MethodPost, "/api/register", "", creds, nil); code != http.StatusCreated {
		t.Fatalf("register returned %d", code)
	}
	if code := request(t, e, http.MethodPost, "/api/register", "", creds, nil); code != http.StatusConflict {
		t.Errorf("duplicate register: got %d, want 409", code)
	}

	var msg map[string]string
	bad := map[string]string{"email": "user@x.com", "password": "wrong"}
	if code := request(t, e, http.MethodPost, "/api/login", "", bad, &msg); code != http.StatusBadRequest {
		t.Errorf("bad password: got %d, want 400", code)
	}
	if msg["message"] != "Invalid password" {
		t.Errorf("unexpected message %q", msg["message"])
	}

	unknown := map[string]string{"email": "nobody@x.com", "password": "pw"}
	if code := request(t, e, http.MethodPost, "/api/login", "", unknown, &msg); code != http.StatusBadRequest {
		t.Errorf("unknown user: got %d, want 400", code)
	}
	if msg["message"] != "User not found" {
		t.Errorf("unexpected message %q", msg["message"])
	}
}

// TestCreateValidationOverHTTP verifies missing required fields come
// back as 400 with a message, not 500.
func TestCreateValidationOverHTTP(t *testing.T) {
	e := newTestApp(t)
	token := login(t, e)

	var msg map[string]string
	if code := request(t, e, http.MethodPost, "/api/criminals", token, map[string]any{"name": "X"}, &msg); code != http.StatusBadRequest {
		t.Errorf("missing dangerLevel: got %d, want 400", code)
	}
	if msg["message"] == "" {
		t.Error("expected a validation message")
	}
}
