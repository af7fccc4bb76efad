package draft

import (
	"context"

	"github.com/rpggio/bidintel/internal/domain/project"
)

// Expander suggests extended terms. It never fails; errors come back as text.
type Expander interface {
	ExpandTerms(ctx context.Context, keywords, projectName string) string
}

// ProjectCreator stores a submitted form as a new project.
type ProjectCreator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}
