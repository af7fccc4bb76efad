package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

// Source exposes a consistent view of both collections.
type Source interface {
	Collections() (projects []project.Project, talents []talent.Talent, version uint64)
}

// Overview is the dashboard payload computed from one store version.
type Overview struct {
	Version uint64       `json:"version"`
	Stats   Stats        `json:"stats"`
	Chart   []ChartPoint `json:"chart"`
}

// Service computes dashboard views and caches them per store version.
type Service struct {
	source Source
	logger *slog.Logger

	mu     sync.Mutex
	cached *Overview
}

// NewService creates a new dashboard service.
func NewService(source Source, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Overview returns stats and chart series for the current store version.
func (s *Service) Overview(_ context.Context) Overview {
	projects, talents, version := s.source.Collections()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cached.Version == version {
		return *s.cached
	}

	ov := &Overview{
		Version: version,
		Stats:   ComputeStats(projects, talents),
		Chart:   ComputeChartSeries(projects),
	}
	s.cached = ov
	if s.logger != nil {
		s.logger.Debug("dashboard recomputed", "version", version)
	}
	return *ov
}
