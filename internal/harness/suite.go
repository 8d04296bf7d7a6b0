package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quellex/greb/internal/engine"
	"github.com/quellex/greb/internal/pattern"
)

// Suite is a data-driven set of match expectations loaded from YAML.
type Suite struct {
	Name     string  `yaml:"suite"`
	Patterns []Block `yaml:"patterns"`
}

// Block groups the cases of a single pattern.
type Block struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Mode    string `yaml:"mode,omitempty"`
	Cases   []Case `yaml:"cases"`
}

// Case pairs one input with its expected verdict.
type Case struct {
	Input string `yaml:"input"`
	Match bool   `yaml:"match"`
}

// LoadSuite loads and validates a suite from a YAML file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &suite, nil
}

// validateSuite checks required fields.
func validateSuite(suite *Suite) error {
	if suite.Name == "" {
		return fmt.Errorf("suite name is required")
	}
	if len(suite.Patterns) == 0 {
		return fmt.Errorf("at least one pattern block is required")
	}

	for i, block := range suite.Patterns {
		if block.Name == "" {
			return fmt.Errorf("patterns[%d]: name is required", i)
		}
		if block.Pattern == "" {
			return fmt.Errorf("patterns[%d] (%s): pattern is required", i, block.Name)
		}
		if _, err := block.mode(); err != nil {
			return fmt.Errorf("patterns[%d] (%s): %w", i, block.Name, err)
		}
		if len(block.Cases) == 0 {
			return fmt.Errorf("patterns[%d] (%s): at least one case is required", i, block.Name)
		}
	}

	return nil
}

// mode resolves the block's mode string, defaulting to exact.
func (b Block) mode() (pattern.Mode, error) {
	if b.Mode == "" {
		return pattern.ModeExact, nil
	}
	return pattern.ParseMode(b.Mode)
}

// RunSuite executes every case in the suite as a subtest, one per
// pattern block and case. Compile failures abort the enclosing block so
// a bad pattern reports once, not once per case.
func RunSuite(t *testing.T, suite *Suite) {
	t.Helper()
	ctx := context.Background()

	for _, block := range suite.Patterns {
		t.Run(block.Name, func(t *testing.T) {
			mode, err := block.mode()
			require.NoError(t, err)

			expr, err := pattern.Compile(block.Pattern, mode)
			require.NoError(t, err, "compile pattern %q", block.Pattern)

			m := engine.NewMatcher(expr)
			for _, c := range block.Cases {
				t.Run(c.Input, func(t *testing.T) {
					res, err := m.Run(ctx, c.Input)
					require.NoError(t, err)
					assert.Equal(t, c.Match, res.Matched,
						"pattern %q against input %q", block.Pattern, c.Input)
				})
			}
		})
	}
}
