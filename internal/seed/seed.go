// Package seed provides the initial project and talent dataset.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rpggio/bidintel/internal/domain/project"
	"github.com/rpggio/bidintel/internal/domain/talent"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// Dataset is the YAML layout of a seed file.
type Dataset struct {
	Projects []project.Project `yaml:"projects"`
	Talents  []talent.Talent   `yaml:"talents"`
}

// Source loads a dataset from the embedded default or a file on disk.
type Source struct {
	path string
}

// Default returns the built-in dataset.
func Default() Source {
	return Source{}
}

// FromFile returns a source that reads path. An empty path means the default.
func FromFile(path string) Source {
	return Source{path: path}
}

// Seed implements store.Seeder.
func (s Source) Seed() ([]project.Project, []talent.Talent, error) {
	data := defaultData
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	ds, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return ds.Projects, ds.Talents, nil
}

// Parse decodes and checks a dataset.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	seen := make(map[string]struct{}, len(ds.Projects))
	for _, p := range ds.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("seed project %q has no id", p.ProjectName)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("seed project id %q is duplicated", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for _, t := range ds.Talents {
		switch t.SocialSecurityStatus {
		case talent.StatusUpdated, talent.StatusPending:
		default:
			return nil, fmt.Errorf("seed talent %q has unknown status %q", t.ID, t.SocialSecurityStatus)
		}
	}

	if ds.Projects == nil {
		ds.Projects = []project.Project{}
	}
	if ds.Talents == nil {
		ds.Talents = []talent.Talent{}
	}
	return &ds, nil
}
