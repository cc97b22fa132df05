package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
	"github.com/mentoria/fingerprint-api/internal/core/ports"
	"github.com/mentoria/fingerprint-api/internal/metrics"
)

// ConsentService enforces the ownership gate in front of the consent store:
// an authenticated subject may only read or write its own record. There is no
// admin or override role.
type ConsentService struct {
	repo   ports.ConsentRepository
	logger zerolog.Logger
}

func NewConsentService(repo ports.ConsentRepository, logger zerolog.Logger) *ConsentService {
	return &ConsentService{repo: repo, logger: logger}
}

// Record upserts the subject's own consent decision. The store is never
// touched when the subject does not match the target user id.
func (s *ConsentService) Record(ctx context.Context, input ports.RecordConsentInput) (*domain.ConsentRecord, error) {
	if input.Subject != input.UserID {
		s.logger.Warn().
			Str("subject", input.Subject).
			Str("user_id", input.UserID).
			Msg("consent write rejected: subject mismatch")
		return nil, domain.ErrForbidden
	}

	rec, err := s.repo.Upsert(ctx, input.UserID, input.Shared)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to upsert consent")
		return nil, err
	}

	metrics.ConsentDecisionsTotal.WithLabelValues(strconv.FormatBool(rec.Shared)).Inc()
	s.logger.Info().
		Str("user_id", rec.UserID).
		Bool("compartilhou_fingerprint", rec.Shared).
		Msg("consent recorded")

	return rec, nil
}

// Get returns the subject's own consent record.
func (s *ConsentService) Get(ctx context.Context, input ports.GetConsentInput) (*domain.ConsentRecord, error) {
	if input.Subject != input.UserID {
		s.logger.Warn().
			Str("subject", input.Subject).
			Str("user_id", input.UserID).
			Msg("consent read rejected: subject mismatch")
		return nil, domain.ErrForbidden
	}

	rec, err := s.repo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrConsentNotFound) {
			metrics.ConsentLookupsTotal.WithLabelValues("miss").Inc()
		}
		return nil, err
	}

	metrics.ConsentLookupsTotal.WithLabelValues("hit").Inc()
	return rec, nil
}
