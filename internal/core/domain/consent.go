package domain

import (
	"errors"
	"time"
)

var ErrConsentNotFound = errors.New("consent record not found")

// ConsentRecord stores a user's decision on sharing fingerprint biometric data.
// At most one record exists per user; a second write replaces Shared and stamps
// UpdatedAt while RecordedAt keeps the time of the first write.
type ConsentRecord struct {
	UserID     string     `json:"user_id"`
	Shared     bool       `json:"compartilhou_fingerprint"`
	RecordedAt time.Time  `json:"data_cadastro"`
	UpdatedAt  *time.Time `json:"data_atualizacao,omitempty"`
}

// ConsentStats summarises recorded decisions. Debug/reporting helper, not part
// of the public request surface.
type ConsentStats struct {
	Total             int     `json:"total"`
	Accepted          int     `json:"aceitaram"`
	Declined          int     `json:"recusaram"`
	AcceptancePercent float64 `json:"percentual_aceitacao"`
}
