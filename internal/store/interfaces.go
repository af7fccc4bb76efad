package store

import (
	"context"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
)

// Persister writes the collections through to durable storage.
type Persister interface {
	LoadAll(ctx context.Context) ([]project.Project, []talent.Talent, error)
	ReplaceProjects(ctx context.Context, projects []project.Project) error
	ReplaceTalents(ctx context.Context, talents []talent.Talent) error
	AppendProject(ctx context.Context, proj project.Project) error
}

// Seeder provides the initial dataset used when storage is empty.
type Seeder interface {
	Seed() ([]project.Project, []talent.Talent, error)
}
