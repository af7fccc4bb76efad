package mocks

import (
	"context"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"github.com/rpggio/bidintel/internal/suggest"
	"github.com/stretchr/testify/mock"
)

// ProjectStore is a mock for project.Store.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) Projects() ([]project.Project, uint64) {
	args := m.Called()
	list, _ := args.Get(0).([]project.Project)
	return list, args.Get(1).(uint64)
}

func (m *ProjectStore) AppendProject(ctx context.Context, proj project.Project) (uint64, error) {
	args := m.Called(ctx, proj)
	return args.Get(0).(uint64), args.Error(1)
}

// Persister is a mock for store.Persister.
type Persister struct {
	mock.Mock
}

func (m *Persister) LoadAll(ctx context.Context) ([]project.Project, []talent.Talent, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]project.Project)
	talents, _ := args.Get(1).([]talent.Talent)
	return projects, talents, args.Error(2)
}

func (m *Persister) ReplaceProjects(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *Persister) ReplaceTalents(ctx context.Context, talents []talent.Talent) error {
	args := m.Called(ctx, talents)
	return args.Error(0)
}

func (m *Persister) AppendProject(ctx context.Context, proj project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

// Generator is a mock for suggest.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, prompt string, opts suggest.Options) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}
