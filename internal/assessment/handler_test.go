package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/norms"
)

func newTestHandler() (*Handler, *echo.Echo) {
	resolver := norms.NewResolver(nil, nil, time.Second, zerolog.Nop())
	return NewHandler(NewService(resolver)), echo.New()
}

func TestHandler_CreateAssessment(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"Asha","age":34,"sex":"Female","height_cm":165,"weight_kg":60,
		"systolic":112,"diastolic":72,"glucose":88,"glucose_context":"Fasting",
		"hemoglobin":13.5,"wbc":6.2,"platelets":260,
		"total_chol":170,"ldl":90,"hdl":58,"triglycerides":110}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var ev Evaluation
	if err := json.Unmarshal(rec.Body.Bytes(), &ev); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if ev.BMICategory != BMINormal {
		t.Errorf("expected normal BMI category, got %s", ev.BMICategory)
	}
	if ev.NormsSource != norms.SourceDefault {
		t.Errorf("expected default norms source, got %s", ev.NormsSource)
	}
	if len(ev.Diet) == 0 || len(ev.Exercise) == 0 {
		t.Error("expected non-empty recommendation lists")
	}
}

func TestHandler_CreateAssessment_EmergencyProfile(t *testing.T) {
	h, e := newTestHandler()
	body := `{"name":"X","age":50,"sex":"Male","height_cm":170,"weight_kg":80,
		"systolic":190,"diastolic":125,"glucose":45,"glucose_context":"Fasting",
		"hemoglobin":13.5,"wbc":6.2,"platelets":260,
		"total_chol":170,"ldl":90,"hdl":58,"triglycerides":110}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ev Evaluation
	if err := json.Unmarshal(rec.Body.Bytes(), &ev); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !ev.Emergency.NeedsEmergency {
		t.Error("expected emergency determination")
	}
	if len(ev.Exercise) != 1 {
		t.Errorf("expected single urgent exercise line under crisis BP, got %v", ev.Exercise)
	}
}

func TestHandler_CreateAssessment_MalformedJSON(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateAssessment(c); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
