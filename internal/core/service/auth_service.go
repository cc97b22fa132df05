package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
	"github.com/mentoria/fingerprint-api/internal/metrics"
)

// AuthService verifies provisioned credentials and issues HS256 bearer tokens.
type AuthService struct {
	repo      ports.CredentialRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.CredentialRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Authenticate verifies the password against the stored bcrypt hash and signs
// a token for the subject. Unknown user and wrong password both return
// domain.ErrInvalidCredentials; the caller never learns which one happened.
func (s *AuthService) Authenticate(ctx context.Context, userID, password string) (string, *domain.Credential, error) {
	if userID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(cred.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", cred.UserID).Msg("failed to sign token")
		return "", nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("accepted").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Str("user_id", cred.UserID).Msg("token issued")

	// The hash stays inside the store boundary.
	cred.PasswordHash = ""
	return token, cred, nil
}

// issueToken signs a token whose subject is the authenticated user id, with
// standard issued-at and expiry claims.
func (s *AuthService) issueToken(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
