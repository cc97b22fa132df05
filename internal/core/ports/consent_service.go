package ports

import (
	"context"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// RecordConsentInput carries a consent decision plus the authenticated subject.
type RecordConsentInput struct {
	// Subject is the user id recovered from the verified bearer token.
	Subject string
	// UserID is the target user id taken from the request body.
	UserID string
	Shared bool
}

// GetConsentInput carries a consent lookup plus the authenticated subject.
type GetConsentInput struct {
	Subject string
	// UserID is the target user id taken from the request path.
	UserID string
}

// ConsentService applies the ownership gate and delegates to the store.
// Every operation fails with domain.ErrForbidden when Subject != UserID.
type ConsentService interface {
	Record(ctx context.Context, input RecordConsentInput) (*domain.ConsentRecord, error)
	Get(ctx context.Context, input GetConsentInput) (*domain.ConsentRecord, error)
}
