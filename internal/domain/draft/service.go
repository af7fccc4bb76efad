package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/bidintel/internal/domain/project"
)

const (
	// closedRetention is how long submitted or discarded drafts stay queryable.
	closedRetention = 15 * time.Minute
	// openIdleRetention is how long an open draft may go without changes
	// before it is treated as abandoned.
	openIdleRetention = 2 * time.Hour
)

// Service manages open project forms and their term expansions.
type Service struct {
	expander Expander
	projects ProjectCreator
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewService creates a new draft service.
func NewService(expander Expander, projects ProjectCreator, logger *slog.Logger) *Service {
	return &Service{
		expander: expander,
		projects: projects,
		logger:   logger,
		now:      time.Now,
		drafts:   make(map[string]*Draft),
	}
}

// WithClock overrides the clock used for timestamps and pruning.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Open starts a new form with optional initial values.
func (s *Service) Open(_ context.Context, initial Patch) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	d := &Draft{
		ID:        uuid.NewString(),
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.Fields.Apply(initial)
	s.drafts[d.ID] = d

	if s.logger != nil {
		s.logger.Debug("draft opened", "draft_id", d.ID)
	}
	return d.clone()
}

// Get returns a draft by id.
func (s *Service) Get(_ context.Context, id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	return d.clone(), nil
}

// Update applies form edits. Changing the name, keywords or extended terms
// invalidates any expansion still in flight.
func (s *Service) Update(_ context.Context, id string, patch Patch) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.openLocked(id)
	if err != nil {
		return nil, err
	}
	if d.Fields.Apply(patch) {
		d.Generation++
	}
	d.UpdatedAt = s.now()
	return d.clone(), nil
}

// Expand requests extended terms for the draft's name and keywords. At most
// one expansion runs per draft. The draft lock is not held while the
// expander runs; the result is dropped with ErrStaleExpansion if the draft
// was closed or its expansion inputs changed in the meantime.
func (s *Service) Expand(ctx context.Context, id string) (*Draft, error) {
	s.mu.Lock()
	d, err := s.openLocked(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if d.Expanding {
		s.mu.Unlock()
		return nil, ErrExpansionInFlight
	}
	name := strings.TrimSpace(d.Fields.ProjectName)
	keywords := strings.TrimSpace(d.Fields.Keywords)
	if name == "" || keywords == "" {
		s.mu.Unlock()
		return nil, ErrMissingExpansionInput
	}
	d.Expanding = true
	generation := d.Generation
	s.mu.Unlock()

	terms := s.expander.ExpandTerms(ctx, keywords, name)

	s.mu.Lock()
	defer s.mu.Unlock()
	d.Expanding = false

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("expanding terms: %w", err)
	}
	if d.Status != StatusOpen || d.Generation != generation {
		if s.logger != nil {
			s.logger.Info("stale expansion discarded", "draft_id", d.ID, "status", d.Status)
		}
		return nil, ErrStaleExpansion
	}

	d.Fields.ExtendedTerms = terms
	d.UpdatedAt = s.now()
	return d.clone(), nil
}

// Submit creates a project from the form and closes the draft.
func (s *Service) Submit(ctx context.Context, id string) (*project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.openLocked(id)
	if err != nil {
		return nil, err
	}

	proj, err := s.projects.Create(ctx, d.Fields.CreateRequest())
	if err != nil {
		return nil, fmt.Errorf("submitting draft: %w", err)
	}

	s.closeLocked(d, StatusSubmitted)
	d.ProjectID = proj.ID
	if s.logger != nil {
		s.logger.Info("draft submitted", "draft_id", d.ID, "project_id", proj.ID)
	}
	return proj, nil
}

// Discard closes the draft without creating a project.
func (s *Service) Discard(_ context.Context, id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.openLocked(id)
	if err != nil {
		return nil, err
	}
	s.closeLocked(d, StatusDiscarded)
	return d.clone(), nil
}

func (s *Service) lookupLocked(id string) (*Draft, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

func (s *Service) openLocked(id string) (*Draft, error) {
	d, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}
	if d.Status != StatusOpen {
		return nil, ErrDraftClosed
	}
	return d, nil
}

func (s *Service) closeLocked(d *Draft, status Status) {
	now := s.now()
	d.Status = status
	d.Generation++
	d.UpdatedAt = now
	d.ClosedAt = &now
}

func (s *Service) pruneLocked(now time.Time) {
	for id, d := range s.drafts {
		switch {
		case d.ClosedAt != nil:
			if now.Sub(*d.ClosedAt) > closedRetention {
				delete(s.drafts, id)
			}
		case d.Expanding:
		case now.Sub(d.UpdatedAt) > openIdleRetention:
			delete(s.drafts, id)
			if s.logger != nil {
				s.logger.Debug("abandoned draft pruned", "draft_id", id)
			}
		}
	}
}
