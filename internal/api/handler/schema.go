package handler

import (
	"time"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// errorResponse is the standard envelope returned on all 4xx/5xx responses:
// a stable machine-readable label plus a human-readable message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Request types ---

type tokenRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Senha  string `json:"senha"   validate:"required"`
}

// Shared is a *bool so a missing field, an explicit false, and a wrong-typed
// value are three different outcomes: absent fails `required`, false passes,
// and a non-boolean JSON value fails at bind time.
type recordFingerprintRequest struct {
	UserID string `json:"user_id"                  validate:"required"`
	Shared *bool  `json:"compartilhou_fingerprint" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from domain
// types so the JSON contract is not coupled to internal changes.

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type consentData struct {
	UserID     string     `json:"user_id"`
	Shared     bool       `json:"compartilhou_fingerprint"`
	RecordedAt time.Time  `json:"data_cadastro"`
	UpdatedAt  *time.Time `json:"data_atualizacao,omitempty"`
}

type consentResponse struct {
	Message string      `json:"message"`
	Data    consentData `json:"data"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func toConsentData(rec *domain.ConsentRecord) consentData {
	return consentData{
		UserID:     rec.UserID,
		Shared:     rec.Shared,
		RecordedAt: rec.RecordedAt.UTC(),
		UpdatedAt:  rec.UpdatedAt,
	}
}
