// Package manifest provides the workspace manifest loader for sift.
package manifest

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in the working directory.
const DefaultFilename = "sift.yaml"

// Loader implements ports.GraphMapper using a YAML workspace manifest.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default manifest filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Map reads the manifest from the given working directory and returns the
// workspace graph.
func (l *Loader) Map(_ context.Context, cwd string) (*domain.Graph, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	return Load(filepath.Join(cwd, filename))
}

// Load reads a manifest file from the given path and returns a domain.Graph.
func Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workspace manifest")
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace manifest")
	}

	g := domain.NewGraph()
	for _, dto := range ws.Projects {
		project, err := mapProject(dto)
		if err != nil {
			return nil, err
		}
		if err := g.AddProject(project); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func mapProject(dto ProjectDTO) (domain.Project, error) {
	if dto.Path == "" {
		return domain.Project{}, zerr.New("project path is required")
	}

	targets := make([]domain.Target, 0, len(dto.Targets))
	names := make(map[string]bool, len(dto.Targets))
	for _, t := range dto.Targets {
		if names[t.Name] {
			err := zerr.With(zerr.New("duplicate target name"), "project_path", dto.Path)
			return domain.Project{}, zerr.With(err, "target", t.Name)
		}
		names[t.Name] = true
		targets = append(targets, domain.Target{Name: t.Name, Sources: t.Sources})
	}

	schemes := make([]domain.Scheme, 0, len(dto.Schemes))
	for _, s := range dto.Schemes {
		scheme := domain.Scheme{Name: s.Name}
		if s.Test != nil {
			action := &domain.TestAction{
				Targets: mapReferences(dto.Path, s.Test.Targets),
			}
			for _, p := range s.Test.Plans {
				action.TestPlans = append(action.TestPlans, domain.TestPlan{
					Path:      p.Path,
					IsDefault: p.Default,
					Targets:   mapReferences(dto.Path, p.Targets),
				})
			}
			scheme.TestAction = action
		}
		schemes = append(schemes, scheme)
	}

	return domain.Project{
		Path:    dto.Path,
		Targets: targets,
		Schemes: schemes,
	}, nil
}

// mapReferences parses target references. A reference is either a bare
// target name, resolved against the enclosing project, or
// "<project path>:<target name>" for cross-project references.
func mapReferences(projectPath string, refs []string) []domain.TargetReference {
	out := make([]domain.TargetReference, 0, len(refs))
	for _, ref := range refs {
		if path, name, ok := strings.Cut(ref, ":"); ok {
			out = append(out, domain.TargetReference{ProjectPath: path, Name: name})
			continue
		}
		out = append(out, domain.TargetReference{ProjectPath: projectPath, Name: ref})
	}
	return out
}
