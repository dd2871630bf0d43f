package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bisect/internal/ir"
)

// Scenario defines a set of lookups against one sorted sequence.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Kind is the element kind: "int", "string" or "auto" (the default).
	// With auto the kind is inferred over the sequence and every target.
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`

	// Sequence is the sorted input. Use [] for an empty sequence; omitting
	// the key is an error.
	Sequence []any `yaml:"sequence" json:"sequence"`

	// RunID is an optional fixed run id for deterministic golden files.
	RunID string `yaml:"run_id,omitempty" json:"run_id,omitempty"`

	// Cases are the lookups to run, in order.
	Cases []Case `yaml:"cases" json:"cases"`
}

// Case is a single lookup with its expected outcome.
type Case struct {
	Name   string  `yaml:"name,omitempty" json:"name,omitempty"`
	Target any     `yaml:"target" json:"target"`
	Expect *Expect `yaml:"expect" json:"expect"`
}

// Expect is the expected outcome of a lookup.
type Expect struct {
	Found bool `yaml:"found" json:"found"`

	// Index pins the exact position. Leave unset to accept any position
	// holding the target.
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`
}

// ErrUnsupportedFormat is returned for scenario files that are neither YAML
// nor CUE.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// IsScenarioFile reports whether path has a scenario file extension.
func IsScenarioFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

// LoadScenario reads and parses a scenario file, choosing the decoder by
// extension. Returns an error if the file doesn't exist, is malformed,
// contains unknown fields or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		scenario, err = ParseYAML(bytes.NewReader(data))
	case ".cue":
		scenario, err = ParseCUE(data, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// ParseYAML decodes a YAML scenario without validating required fields.
// Unknown fields are rejected to catch typos like "case:" for "cases:".
func ParseYAML(r io.Reader) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := ir.ParseKind(s.Kind); err != nil {
		return err
	}

	if s.Sequence == nil {
		return fmt.Errorf("sequence is required (use [] for an empty sequence)")
	}

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Target == nil {
			return fmt.Errorf("cases[%d]: target is required", i)
		}
		if c.Expect == nil {
			return fmt.Errorf("cases[%d]: expect is required", i)
		}
		if c.Expect.Index != nil {
			if !c.Expect.Found {
				return fmt.Errorf("cases[%d].expect: index requires found: true", i)
			}
			if *c.Expect.Index < 0 {
				return fmt.Errorf("cases[%d].expect: index must be non-negative", i)
			}
		}
	}

	return nil
}
