package config

// Gatefile represents the structure of the gate.yaml route table.
type Gatefile struct {
	Version  string               `yaml:"version"`
	Defaults DefaultsDTO          `yaml:"defaults"`
	Actions  map[string]ActionDTO `yaml:"actions"`
}

// DefaultsDTO holds settings applied to every action before its own.
type DefaultsDTO struct {
	FormLimits *FormLimitsDTO `yaml:"formLimits"`
}

// ActionDTO represents one action definition in the route table.
type ActionDTO struct {
	RouteValues map[string]string `yaml:"routeValues"`
	Methods     []string          `yaml:"methods"`
	Constraints []ConstraintDTO   `yaml:"constraints"`
	FormLimits  *FormLimitsDTO    `yaml:"formLimits"`
}

// ConstraintDTO represents one raw constraint metadata entry.
type ConstraintDTO struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Value    string `yaml:"value"`
	Reusable *bool  `yaml:"reusable"`
}

// FormLimitsDTO represents form parsing limits in the configuration.
type FormLimitsDTO struct {
	MaxBodySize   int64 `yaml:"maxBodySize"`
	MaxValueCount int   `yaml:"maxValueCount"`
}
