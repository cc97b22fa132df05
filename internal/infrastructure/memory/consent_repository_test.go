package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mentoria/fingerprint-api/internal/core/domain"
)

func TestConsentRepository_UpsertThenGet(t *testing.T) {
	repo := NewConsentRepository()
	ctx := context.Background()

	rec, err := repo.Upsert(ctx, "abc123", true)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec.UserID != "abc123" || !rec.Shared {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.RecordedAt.IsZero() {
		t.Fatalf("data_cadastro not stamped")
	}
	if rec.UpdatedAt != nil {
		t.Fatalf("data_atualizacao present on first write")
	}

	got, err := repo.FindByUserID(ctx, "abc123")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Shared != rec.Shared || !got.RecordedAt.Equal(rec.RecordedAt) {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, rec)
	}
}

func TestConsentRepository_SecondWriteOverwrites(t *testing.T) {
	repo := NewConsentRepository()
	ctx := context.Background()

	first, _ := repo.Upsert(ctx, "abc123", true)
	second, err := repo.Upsert(ctx, "abc123", false)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.Shared {
		t.Fatalf("last write did not win")
	}
	if !second.RecordedAt.Equal(first.RecordedAt) {
		t.Fatalf("data_cadastro changed on overwrite")
	}
	if second.UpdatedAt == nil {
		t.Fatalf("data_atualizacao not stamped on second write")
	}

	got, _ := repo.FindByUserID(ctx, "abc123")
	if got.Shared {
		t.Fatalf("stored value not overwritten")
	}
}

func TestConsentRepository_FindMissing(t *testing.T) {
	repo := NewConsentRepository()

	if _, err := repo.FindByUserID(context.Background(), "ghost"); err != domain.ErrConsentNotFound {
		t.Fatalf("expected ErrConsentNotFound, got %v", err)
	}
}

func TestConsentRepository_Clear(t *testing.T) {
	repo := NewConsentRepository()
	ctx := context.Background()

	repo.Upsert(ctx, "abc123", true)
	repo.Upsert(ctx, "def456", false)
	repo.Clear(ctx)

	if _, err := repo.FindByUserID(ctx, "abc123"); err != domain.ErrConsentNotFound {
		t.Fatalf("record survived Clear: %v", err)
	}
	all, _ := repo.All(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d records", len(all))
	}
}

func TestConsentRepository_Stats(t *testing.T) {
	repo := NewConsentRepository()
	ctx := context.Background()

	repo.Upsert(ctx, "a", true)
	repo.Upsert(ctx, "b", true)
	repo.Upsert(ctx, "c", false)

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Accepted != 2 || stats.Declined != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AcceptancePercent != 66.67 {
		t.Fatalf("expected 66.67%%, got %v", stats.AcceptancePercent)
	}
}

func TestConsentRepository_ReturnsCopy(t *testing.T) {
	repo := NewConsentRepository()
	ctx := context.Background()

	rec, _ := repo.Upsert(ctx, "abc123", true)
	rec.Shared = false
	now := time.Now()
	rec.UpdatedAt = &now

	got, _ := repo.FindByUserID(ctx, "abc123")
	if !got.Shared || got.UpdatedAt != nil {
		t.Fatalf("repo exposed its internal record")
	}
}
