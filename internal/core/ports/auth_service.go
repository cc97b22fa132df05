package ports

import (
	"context"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// AuthService authenticates provisioned users and issues bearer tokens.
type AuthService interface {
	// Authenticate verifies user_id/password and returns a signed token on
	// success. Unknown user and wrong password both yield
	// domain.ErrInvalidCredentials so callers cannot tell them apart.
	Authenticate(ctx context.Context, userID, password string) (string, *domain.Credential, error)
}
