package project

import "context"

// Store provides the project collection.
type Store interface {
	Projects() ([]Project, uint64)
	AppendProject(ctx context.Context, proj Project) (uint64, error)
}
