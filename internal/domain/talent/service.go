package talent

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles talent operations.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new talent service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// WithClock overrides the clock used to stamp synchronizations.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListResult is a filtered view together with the store version it was read from.
// Total is the size of the whole collection; Count is the number of matches.
type ListResult struct {
	Version uint64
	Total   int
	Count   int
	Talents []Talent
}

// SyncResult describes a completed bulk synchronization.
type SyncResult struct {
	Version uint64
	Synced  int
	Message string
	Talents []Talent
}

// List returns the talents matching the raw criteria.
func (s *Service) List(_ context.Context, raw RawCriteria) ListResult {
	all, version := s.store.Talents()
	matched := Filter(all, ParseCriteria(raw))
	return ListResult{
		Version: version,
		Total:   len(all),
		Count:   len(matched),
		Talents: matched,
	}
}

// Sync applies the bulk status update to the whole collection atomically.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	today := s.now().UTC()
	updated, version, err := s.store.UpdateTalents(ctx, func(current []Talent) []Talent {
		return Sync(current, today)
	})
	if err != nil {
		return nil, fmt.Errorf("syncing talents: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("talent sync complete", "count", len(updated), "version", version)
	}
	return &SyncResult{
		Version: version,
		Synced:  len(updated),
		Message: SyncMessage,
		Talents: updated,
	}, nil
}
