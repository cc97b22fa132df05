package ports

import (
	"context"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// ConsentRepository defines storage operations for consent records.
type ConsentRepository interface {
	// Upsert inserts a record for userID or, when one exists, replaces its
	// Shared value and stamps UpdatedAt. Returns the resulting record.
	Upsert(ctx context.Context, userID string, shared bool) (*domain.ConsentRecord, error)
	// FindByUserID returns domain.ErrConsentNotFound when no record exists.
	FindByUserID(ctx context.Context, userID string) (*domain.ConsentRecord, error)
	// All lists every record. Debug helper, not routed.
	All(ctx context.Context) ([]*domain.ConsentRecord, error)
	// Stats aggregates accepted/declined counts. Debug helper, not routed.
	Stats(ctx context.Context) (*domain.ConsentStats, error)
	// Clear removes all records. Test isolation only.
	Clear(ctx context.Context)
}
