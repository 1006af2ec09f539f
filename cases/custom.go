package cases

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dase955/VectorDBBench/dataset"
)

// CustomSpec is the YAML description of a caller-supplied scenario. It
// builds a descriptor with CaseTypeCustom that bypasses the registry and is
// handed directly to the runner.
type CustomSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Dataset string `yaml:"dataset"`
	Size    int64  `yaml:"size"`

	// Label is "performance" (default) or "load".
	Label string `yaml:"label,omitempty"`

	// Durations in Go syntax, e.g. "2h30m". Empty keeps the family default.
	LoadTimeout     string `yaml:"load_timeout,omitempty"`
	OptimizeTimeout string `yaml:"optimize_timeout,omitempty"`

	FilterRate *float64 `yaml:"filter_rate,omitempty"`
}

// LoadCustom reads a CustomSpec from a YAML file and builds its descriptor.
func LoadCustom(path string) (*Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read custom case: %w", err)
	}

	var spec CustomSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse custom case: %w", err)
	}
	return spec.Build()
}

// Build validates the spec and constructs the descriptor. Validation fails
// loudly; values are never repaired or clamped.
func (s *CustomSpec) Build() (*Case, error) {
	ds, err := dataset.Parse(s.Dataset)
	if err != nil {
		return nil, err
	}
	data := ds.Data()

	if s.Size <= 0 {
		return nil, fmt.Errorf("custom case: size %d must be positive", s.Size)
	}
	if s.Size > data.Size {
		return nil, fmt.Errorf("custom case: size %d exceeds %s natural size %d",
			s.Size, data.Name, data.Size)
	}

	var def familyDefaults
	switch strings.ToLower(s.Label) {
	case "", "performance":
		def = performanceFamily
	case "load":
		def = loadFamily
	default:
		return nil, fmt.Errorf("custom case: unknown label %q", s.Label)
	}

	spec := caseSpec{
		dataset:     ds.Manager(s.Size),
		name:        s.Name,
		description: s.Description,
		filterRate:  s.FilterRate,
	}
	if spec.name == "" {
		spec.name = fmt.Sprintf("Custom Case (%s %d)", data.Name, s.Size)
	}

	if s.LoadTimeout != "" {
		d, err := time.ParseDuration(s.LoadTimeout)
		if err != nil {
			return nil, fmt.Errorf("custom case: load_timeout: %w", err)
		}
		spec.loadTimeout = d
	}
	if s.OptimizeTimeout != "" {
		if def.label == LabelLoad {
			return nil, fmt.Errorf("custom case: load cases take no optimize_timeout")
		}
		d, err := time.ParseDuration(s.OptimizeTimeout)
		if err != nil {
			return nil, fmt.Errorf("custom case: optimize_timeout: %w", err)
		}
		spec.optimizeTimeout = &d
	}

	if s.FilterRate != nil {
		if r := *s.FilterRate; r <= 0 || r > 1 {
			return nil, &ErrInvalidFilterConfig{Rate: r, RecordCount: s.Size}
		}
	}

	return build(CaseTypeCustom, def, spec), nil
}
