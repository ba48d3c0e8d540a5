// Package domain contains the core domain models for selective test caching.
package domain

import (
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is an immutable snapshot of the workspace description for one run.
// It maps project paths to projects and preserves declaration order.
type Graph struct {
	projects map[string]Project
	order    []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		projects: make(map[string]Project),
	}
}

// AddProject adds a project to the graph.
// It returns an error if a project with the same path already exists.
func (g *Graph) AddProject(p Project) error {
	if _, exists := g.projects[p.Path]; exists {
		return zerr.With(zerr.Wrap(ErrProjectAlreadyExists, ""), "project_path", p.Path)
	}
	g.projects[p.Path] = p
	g.order = append(g.order, p.Path)
	return nil
}

// Projects returns an iterator over projects in declaration order.
func (g *Graph) Projects() iter.Seq[Project] {
	return func(yield func(Project) bool) {
		for _, path := range g.order {
			if !yield(g.projects[path]) {
				return
			}
		}
	}
}

// ProjectCount returns the number of projects in the graph.
func (g *Graph) ProjectCount() int {
	return len(g.projects)
}

// Project returns the project at the given path.
func (g *Graph) Project(path string) (Project, bool) {
	p, ok := g.projects[path]
	return p, ok
}

// SchemeNamed looks the scheme up across every project in the graph.
// Scheme names are unique within a run's resolution scope, so the first
// declaration wins.
func (g *Graph) SchemeNamed(name string) (Scheme, error) {
	for p := range g.Projects() {
		for _, s := range p.Schemes {
			if s.Name == name {
				return s, nil
			}
		}
	}
	return Scheme{}, zerr.With(zerr.Wrap(ErrSchemeNotFound, ""), "scheme", name)
}

// ResolveReference resolves a target reference to its graph identity.
func (g *Graph) ResolveReference(ref TargetReference) (GraphTarget, error) {
	p, ok := g.projects[ref.ProjectPath]
	if !ok {
		return GraphTarget{}, zerr.With(zerr.Wrap(ErrTargetNotFound, ""), "project_path", ref.ProjectPath)
	}
	for _, t := range p.Targets {
		if t.Name == ref.Name {
			return GraphTarget{ProjectPath: p.Path, TargetName: t.Name}, nil
		}
	}
	err := zerr.With(zerr.Wrap(ErrTargetNotFound, ""), "project_path", ref.ProjectPath)
	return GraphTarget{}, zerr.With(err, "target", ref.Name)
}

// Target returns the target definition behind a graph identity.
func (g *Graph) Target(gt GraphTarget) (Target, bool) {
	p, ok := g.projects[gt.ProjectPath]
	if !ok {
		return Target{}, false
	}
	for _, t := range p.Targets {
		if t.Name == gt.TargetName {
			return t, true
		}
	}
	return Target{}, false
}

// Project describes one project in the workspace. Targets are uniquely
// named within a project; the same target name may appear in other projects.
type Project struct {
	Path    string
	Targets []Target
	Schemes []Scheme
}

// Target is a buildable or testable unit within a project.
type Target struct {
	Name    string
	Sources []string
}

// Scheme groups targets into a named build/test configuration.
type Scheme struct {
	Name       string
	TestAction *TestAction
}

// TestAction holds either an explicit ordered target list or a list of
// test plans, one of which may be marked default.
type TestAction struct {
	Targets   []TargetReference
	TestPlans []TestPlan
}

// TestPlan is an ordered, named subset of testable targets within a scheme.
type TestPlan struct {
	Path      string
	IsDefault bool
	Targets   []TargetReference
}

// Name derives the plan's name from its path's base name, without the
// file extension.
func (p TestPlan) Name() string {
	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TargetReference identifies a target by project path and name.
type TargetReference struct {
	ProjectPath string
	Name        string
}

// GraphTarget is the resolved target identity used as the hashing key.
// Two projects may contain same-named targets, so the bare name is not
// enough to key a hash on.
type GraphTarget struct {
	ProjectPath string
	TargetName  string
}

// TestIdentifier returns the string identity used to match cache entries
// and to build the underlying tool's skip selector.
func (gt GraphTarget) TestIdentifier() TestIdentifier {
	return TestIdentifier(gt.TargetName)
}

// TestIdentifier is the test target name as understood by the underlying
// build tool and the cache backend.
type TestIdentifier string

// String returns the identifier as a plain string.
func (id TestIdentifier) String() string {
	return string(id)
}
