package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/bidintel/internal/repository"
)

// Service handles project operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateRequest defines project creation inputs. The id is always generated.
type CreateRequest struct {
	ProjectName         string
	Keywords            string
	ExtendedTerms       string
	ProjectContent      string
	ContractSigningDate string
	ProjectEndDate      string
	ContractAmount      float64
	ConstructionUnit    string
	ContactPerson       string
	ContactPhone        string
}

// ListResult is a filtered view together with the store version it was read from.
// Total is the size of the whole collection; Count is the number of matches.
type ListResult struct {
	Version  uint64
	Total    int
	Count    int
	Projects []Project
}

// Create validates the request and appends a new project to the store.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	proj := Project{
		ID:                  uuid.NewString(),
		ProjectName:         strings.TrimSpace(req.ProjectName),
		Keywords:            req.Keywords,
		ExtendedTerms:       req.ExtendedTerms,
		ProjectContent:      req.ProjectContent,
		ContractSigningDate: strings.TrimSpace(req.ContractSigningDate),
		ProjectEndDate:      strings.TrimSpace(req.ProjectEndDate),
		ContractAmount:      req.ContractAmount,
		ConstructionUnit:    req.ConstructionUnit,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
	}

	version, err := s.store.AppendProject(ctx, proj)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project created", "id", proj.ID, "name", proj.ProjectName, "version", version)
	}
	return &proj, nil
}

// List returns the projects matching the raw criteria.
func (s *Service) List(_ context.Context, raw RawCriteria) ListResult {
	all, version := s.store.Projects()
	matched := Filter(all, ParseCriteria(raw))
	return ListResult{
		Version:  version,
		Total:    len(all),
		Count:    len(matched),
		Projects: matched,
	}
}
