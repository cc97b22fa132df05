package ports

import (
	"context"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// CredentialRepository defines lookup operations over provisioned users.
type CredentialRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Credential, error)
	Exists(ctx context.Context, userID string) bool
}
