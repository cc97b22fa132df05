// Package memory provides the in-process repositories backing the credential
// and consent stores. Data is volatile: everything is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// SeedUser is a plaintext credential hashed at construction time.
type SeedUser struct {
	UserID      string
	Password    string
	DisplayName string
}

// DefaultSeedUsers is the fixed set of provisioned users created at startup.
var DefaultSeedUsers = []SeedUser{
	{UserID: "abc123", Password: "minhaSenhaSegura", DisplayName: "Usuário Teste 1"},
	{UserID: "def456", Password: "outraSenha123", DisplayName: "Usuário Teste 2"},
	{UserID: "ghi789", Password: "senhaTeste456", DisplayName: "Usuário Teste 3"},
}

// CredentialRepository holds provisioned users in a mutex-guarded map.
// The set is immutable after construction; the lock exists because reads run
// on concurrent request goroutines.
type CredentialRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.Credential
}

// NewCredentialRepository hashes each seed password with bcrypt and stores the
// resulting credentials.
func NewCredentialRepository(seed []SeedUser) (*CredentialRepository, error) {
	users := make(map[string]*domain.Credential, len(seed))
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.UserID, err)
		}
		users[u.UserID] = &domain.Credential{
			UserID:       u.UserID,
			PasswordHash: string(hash),
			DisplayName:  u.DisplayName,
		}
	}
	return &CredentialRepository{users: users}, nil
}

func (r *CredentialRepository) FindByUserID(_ context.Context, userID string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *cred
	return &copied, nil
}

func (r *CredentialRepository) Exists(_ context.Context, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok
}

// Len reports how many users are provisioned. Used for the startup log line.
func (r *CredentialRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
