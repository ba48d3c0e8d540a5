package manifest

// Workspace represents the structure of the sift.yaml workspace manifest.
type Workspace struct {
	Version  string       `yaml:"version"`
	Projects []ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents a project definition in the manifest.
type ProjectDTO struct {
	Path    string      `yaml:"path"`
	Targets []TargetDTO `yaml:"targets"`
	Schemes []SchemeDTO `yaml:"schemes"`
}

// TargetDTO represents a target definition in the manifest.
type TargetDTO struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`
}

// SchemeDTO represents a scheme definition in the manifest.
type SchemeDTO struct {
	Name string         `yaml:"name"`
	Test *TestActionDTO `yaml:"test"`
}

// TestActionDTO represents a scheme's test action. Targets and plans are
// mutually exclusive in practice; when both are present targets win.
type TestActionDTO struct {
	Targets []string      `yaml:"targets"`
	Plans   []TestPlanDTO `yaml:"plans"`
}

// TestPlanDTO represents a test plan within a scheme.
type TestPlanDTO struct {
	Path    string   `yaml:"path"`
	Default bool     `yaml:"default"`
	Targets []string `yaml:"targets"`
}
