package memory

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

// ConsentRepository is a mutex-guarded map from user id to consent record.
// Upsert and lookup are single-key operations; no transaction ever spans
// multiple records.
type ConsentRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.ConsentRecord
}

// NewConsentRepository returns an empty consent store.
func NewConsentRepository() *ConsentRepository {
	return &ConsentRepository{
		records: make(map[string]*domain.ConsentRecord),
	}
}

// Upsert inserts a record on first write and mutates it in place afterwards.
// RecordedAt is stamped once; later writes replace Shared and stamp UpdatedAt.
func (r *ConsentRepository) Upsert(_ context.Context, userID string, shared bool) (*domain.ConsentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	rec, ok := r.records[userID]
	if !ok {
		rec = &domain.ConsentRecord{
			UserID:     userID,
			Shared:     shared,
			RecordedAt: now,
		}
		r.records[userID] = rec
	} else {
		rec.Shared = shared
		updated := now
		rec.UpdatedAt = &updated
	}

	copied := *rec
	return &copied, nil
}

func (r *ConsentRepository) FindByUserID(_ context.Context, userID string) (*domain.ConsentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[userID]
	if !ok {
		return nil, domain.ErrConsentNotFound
	}
	copied := *rec
	return &copied, nil
}

// All returns every stored record. Not routed; debug and test helper.
func (r *ConsentRepository) All(_ context.Context) ([]*domain.ConsentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ConsentRecord, 0, len(r.records))
	for _, rec := range r.records {
		copied := *rec
		out = append(out, &copied)
	}
	return out, nil
}

// Stats aggregates accepted/declined counts. Not routed; debug and test helper.
func (r *ConsentRepository) Stats(_ context.Context) (*domain.ConsentStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &domain.ConsentStats{Total: len(r.records)}
	for _, rec := range r.records {
		if rec.Shared {
			stats.Accepted++
		} else {
			stats.Declined++
		}
	}
	if stats.Total > 0 {
		pct := float64(stats.Accepted) / float64(stats.Total) * 100
		stats.AcceptancePercent = math.Round(pct*100) / 100
	}
	return stats, nil
}

// Clear removes all records. Test isolation only; never reachable over HTTP.
func (r *ConsentRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*domain.ConsentRecord)
}
