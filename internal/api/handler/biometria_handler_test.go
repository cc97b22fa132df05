package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mentoria/fingerprint-api/internal/api/middleware"
	"github.com/mentoria/fingerprint-api/internal/core/domain"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
)

type stubConsentService struct {
	recordFn func(ctx context.Context, input ports.RecordConsentInput) (*domain.ConsentRecord, error)
	getFn    func(ctx context.Context, input ports.GetConsentInput) (*domain.ConsentRecord, error)
}

func (s *stubConsentService) Record(ctx context.Context, input ports.RecordConsentInput) (*domain.ConsentRecord, error) {
	return s.recordFn(ctx, input)
}

func (s *stubConsentService) Get(ctx context.Context, input ports.GetConsentInput) (*domain.ConsentRecord, error) {
	return s.getFn(ctx, input)
}

func newBiometriaContext(t *testing.T, method, target, body, subject string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subject != "" {
		c.Set(middleware.SubjectContextKey, subject)
	}
	return c, rec
}

func TestBiometriaHandler_Record_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubConsentService{
		recordFn: func(_ context.Context, input ports.RecordConsentInput) (*domain.ConsentRecord, error) {
			if input.Subject != "abc123" || input.UserID != "abc123" || !input.Shared {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.ConsentRecord{UserID: "abc123", Shared: true, RecordedAt: now}, nil
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodPost, "/biometria/fingerprint",
		`{"user_id":"abc123","compartilhou_fingerprint":true}`, "abc123")
	if err := h.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			UserID     string `json:"user_id"`
			Shared     bool   `json:"compartilhou_fingerprint"`
			RecordedAt string `json:"data_cadastro"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.UserID != "abc123" || !resp.Data.Shared || resp.Data.RecordedAt == "" {
		t.Fatalf("unexpected data payload: %+v", resp.Data)
	}
}

func TestBiometriaHandler_Record_FalseIsValid(t *testing.T) {
	stub := &stubConsentService{
		recordFn: func(_ context.Context, input ports.RecordConsentInput) (*domain.ConsentRecord, error) {
			if input.Shared {
				t.Fatalf("expected shared=false")
			}
			return &domain.ConsentRecord{UserID: "abc123", Shared: false, RecordedAt: time.Now()}, nil
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodPost, "/biometria/fingerprint",
		`{"user_id":"abc123","compartilhou_fingerprint":false}`, "abc123")
	_ = h.Record(c)

	if rec.Code != http.StatusCreated {
		t.Fatalf("explicit false rejected: got %d", rec.Code)
	}
}

func TestBiometriaHandler_Record_BadInput(t *testing.T) {
	stub := &stubConsentService{
		recordFn: func(context.Context, ports.RecordConsentInput) (*domain.ConsentRecord, error) {
			t.Fatalf("store must not be touched on invalid input")
			return nil, nil
		},
	}
	h := NewBiometriaHandler(stub)

	for _, body := range []string{
		`{}`,
		`{"user_id":"abc123"}`,
		`{"compartilhou_fingerprint":true}`,
		`{"user_id":"","compartilhou_fingerprint":true}`,
		`{"user_id":"   ","compartilhou_fingerprint":true}`,
		`{"user_id":"abc123","compartilhou_fingerprint":"sim"}`,
		`{"user_id":"abc123","compartilhou_fingerprint":1}`,
	} {
		c, rec := newBiometriaContext(t, http.MethodPost, "/biometria/fingerprint", body, "abc123")
		_ = h.Record(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body %s: invalid json: %v", body, err)
		}
		if resp["error"] != "Dados inválidos" {
			t.Fatalf("body %s: unexpected error label: %q", body, resp["error"])
		}
	}
}

func TestBiometriaHandler_Record_Forbidden(t *testing.T) {
	stub := &stubConsentService{
		recordFn: func(context.Context, ports.RecordConsentInput) (*domain.ConsentRecord, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodPost, "/biometria/fingerprint",
		`{"user_id":"def456","compartilhou_fingerprint":true}`, "abc123")
	_ = h.Record(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Acesso negado" {
		t.Fatalf("unexpected error label: %q", resp["error"])
	}
}

func TestBiometriaHandler_Record_NoSubject(t *testing.T) {
	stub := &stubConsentService{
		recordFn: func(context.Context, ports.RecordConsentInput) (*domain.ConsentRecord, error) {
			t.Fatalf("should not be called without a subject")
			return nil, nil
		},
	}
	h := NewBiometriaHandler(stub)

	c, _ := newBiometriaContext(t, http.MethodPost, "/biometria/fingerprint",
		`{"user_id":"abc123","compartilhou_fingerprint":true}`, "")

	err := h.Record(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBiometriaHandler_Get_Success(t *testing.T) {
	updated := time.Now().UTC()
	stub := &stubConsentService{
		getFn: func(_ context.Context, input ports.GetConsentInput) (*domain.ConsentRecord, error) {
			if input.Subject != "abc123" || input.UserID != "abc123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.ConsentRecord{
				UserID:     "abc123",
				Shared:     true,
				RecordedAt: updated.Add(-time.Hour),
				UpdatedAt:  &updated,
			}, nil
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodGet, "/biometria/fingerprint/abc123", "", "abc123")
	c.SetParamNames("user_id")
	c.SetParamValues("abc123")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["compartilhou_fingerprint"] != true {
		t.Fatalf("unexpected decision: %v", data["compartilhou_fingerprint"])
	}
	if data["data_atualizacao"] == nil {
		t.Fatalf("expected data_atualizacao in payload")
	}
}

func TestBiometriaHandler_Get_NotFound(t *testing.T) {
	stub := &stubConsentService{
		getFn: func(context.Context, ports.GetConsentInput) (*domain.ConsentRecord, error) {
			return nil, domain.ErrConsentNotFound
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodGet, "/biometria/fingerprint/abc123", "", "abc123")
	c.SetParamNames("user_id")
	c.SetParamValues("abc123")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Usuário não encontrado" {
		t.Fatalf("unexpected error label: %q", resp["error"])
	}
}

func TestBiometriaHandler_Get_Forbidden(t *testing.T) {
	stub := &stubConsentService{
		getFn: func(context.Context, ports.GetConsentInput) (*domain.ConsentRecord, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewBiometriaHandler(stub)

	c, rec := newBiometriaContext(t, http.MethodGet, "/biometria/fingerprint/def456", "", "abc123")
	c.SetParamNames("user_id")
	c.SetParamValues("def456")
	_ = h.Get(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
