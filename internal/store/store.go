package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/repository"
)

// Snapshot is an immutable view of both collections at one version.
// Callers must not modify the slices.
type Snapshot struct {
	Version  uint64
	Projects []project.Project
	Talents  []talent.Talent
}

// Store holds the current project and talent collections. Every mutation
// swaps in a new snapshot with Version+1; readers never lock.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	persist Persister
	logger  *slog.Logger
}

// New creates an empty store. persist may be nil for a memory-only store.
func New(persist Persister, logger *slog.Logger) *Store {
	s := &Store{persist: persist, logger: logger}
	s.current.Store(&Snapshot{
		Projects: []project.Project{},
		Talents:  []talent.Talent{},
	})
	return s
}

// Load reads both collections from the persister. When storage is empty and
// a seeder is given, the seed is written through and becomes the initial state.
// Load always publishes a new snapshot, so a loaded store is at version 1 or later.
func (s *Store) Load(ctx context.Context, seeder Seeder) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []project.Project
	var talents []talent.Talent
	if s.persist != nil {
		var err error
		projects, talents, err = s.persist.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading records: %w", err)
		}
	}

	if len(projects) == 0 && len(talents) == 0 && seeder != nil {
		seedProjects, seedTalents, err := seeder.Seed()
		if err != nil {
			return nil, fmt.Errorf("loading seed: %w", err)
		}
		if s.persist != nil {
			if err := s.persist.ReplaceProjects(ctx, seedProjects); err != nil {
				return nil, fmt.Errorf("writing seed projects: %w", err)
			}
			if err := s.persist.ReplaceTalents(ctx, seedTalents); err != nil {
				return nil, fmt.Errorf("writing seed talents: %w", err)
			}
		}
		projects, talents = seedProjects, seedTalents
		if s.logger != nil {
			s.logger.Info("store seeded", "projects", len(projects), "talents", len(talents))
		}
	}

	if projects == nil {
		projects = []project.Project{}
	}
	if talents == nil {
		talents = []talent.Talent{}
	}
	return s.swap(projects, talents), nil
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Version returns the current generation counter.
func (s *Store) Version() uint64 {
	return s.current.Load().Version
}

// Projects returns a copy of the project collection and its version.
func (s *Store) Projects() ([]project.Project, uint64) {
	snap := s.current.Load()
	return slices.Clone(snap.Projects), snap.Version
}

// Talents returns a copy of the talent collection and its version.
func (s *Store) Talents() ([]talent.Talent, uint64) {
	snap := s.current.Load()
	return slices.Clone(snap.Talents), snap.Version
}

// Collections returns both collections from a single snapshot. The slices
// are shared and must be treated as read-only.
func (s *Store) Collections() ([]project.Project, []talent.Talent, uint64) {
	snap := s.current.Load()
	return snap.Projects, snap.Talents, snap.Version
}

// ReplaceProjects swaps the whole project collection.
func (s *Store) ReplaceProjects(ctx context.Context, projects []project.Project) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasDuplicateIDs(projects) {
		return 0, repository.ErrConflict
	}
	next := slices.Clone(projects)
	if next == nil {
		next = []project.Project{}
	}
	if s.persist != nil {
		if err := s.persist.ReplaceProjects(ctx, next); err != nil {
			return 0, fmt.Errorf("persisting projects: %w", err)
		}
	}
	return s.swap(next, s.current.Load().Talents).Version, nil
}

// ReplaceTalents swaps the whole talent collection.
func (s *Store) ReplaceTalents(ctx context.Context, talents []talent.Talent) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceTalentsLocked(ctx, slices.Clone(talents))
}

// UpdateTalents derives a new talent collection from the current one and
// swaps it in without letting another writer interleave.
func (s *Store) UpdateTalents(ctx context.Context, fn func([]talent.Talent) []talent.Talent) ([]talent.Talent, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(slices.Clone(s.current.Load().Talents))
	version, err := s.replaceTalentsLocked(ctx, next)
	if err != nil {
		return nil, 0, err
	}
	return slices.Clone(next), version, nil
}

// AppendProject adds a project at the end of the collection. An id that is
// already present is rejected with repository.ErrConflict.
func (s *Store) AppendProject(ctx context.Context, proj project.Project) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	for _, existing := range cur.Projects {
		if existing.ID == proj.ID {
			return 0, repository.ErrConflict
		}
	}
	if s.persist != nil {
		if err := s.persist.AppendProject(ctx, proj); err != nil {
			return 0, fmt.Errorf("persisting project: %w", err)
		}
	}

	next := make([]project.Project, 0, len(cur.Projects)+1)
	next = append(next, cur.Projects...)
	next = append(next, proj)
	return s.swap(next, cur.Talents).Version, nil
}

func (s *Store) replaceTalentsLocked(ctx context.Context, next []talent.Talent) (uint64, error) {
	if next == nil {
		next = []talent.Talent{}
	}
	if s.persist != nil {
		if err := s.persist.ReplaceTalents(ctx, next); err != nil {
			return 0, fmt.Errorf("persisting talents: %w", err)
		}
	}
	return s.swap(s.current.Load().Projects, next).Version, nil
}

// swap must be called with mu held.
func (s *Store) swap(projects []project.Project, talents []talent.Talent) *Snapshot {
	snap := &Snapshot{
		Version:  s.current.Load().Version + 1,
		Projects: projects,
		Talents:  talents,
	}
	s.current.Store(snap)
	return snap
}

func hasDuplicateIDs(projects []project.Project) bool {
	seen := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.ID]; ok {
			return true
		}
		seen[p.ID] = struct{}{}
	}
	return false
}
