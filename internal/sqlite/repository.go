package sqlite

import (
	"context"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

// Repository persists both collections for store.Store.
type Repository struct {
	Projects *ProjectRepository
	Talents  *TalentRepository
}

// NewRepository creates a Repository backed by db.
func NewRepository(db *DB) *Repository {
	return &Repository{
		Projects: NewProjectRepository(db),
		Talents:  NewTalentRepository(db),
	}
}

// LoadAll reads both collections.
func (r *Repository) LoadAll(ctx context.Context) ([]project.Project, []talent.Talent, error) {
	projects, err := r.Projects.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	talents, err := r.Talents.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return projects, talents, nil
}

// ReplaceProjects overwrites the project collection.
func (r *Repository) ReplaceProjects(ctx context.Context, projects []project.Project) error {
	return r.Projects.ReplaceAll(ctx, projects)
}

// ReplaceTalents overwrites the talent collection.
func (r *Repository) ReplaceTalents(ctx context.Context, talents []talent.Talent) error {
	return r.Talents.ReplaceAll(ctx, talents)
}

// AppendProject adds one project at the end.
func (r *Repository) AppendProject(ctx context.Context, proj project.Project) error {
	return r.Projects.Append(ctx, proj)
}
