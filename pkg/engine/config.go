package engine

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/function_families/pkg/recognize"
	"github.com/wildfunctions/function_families/pkg/sample"
)

// FamilyAuto selects the recognizer from the text of each expression.
const FamilyAuto = "auto"

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "csv"}

// Config holds all parameters for one run.
type Config struct {
	Expressions []string  `json:"expressions" yaml:"expressions"`
	Family      string    `json:"family" yaml:"family"`   // FamilyAuto or a recognizer name
	XRange      float64   `json:"x_range" yaml:"x_range"` // half-width of the x window
	YRange      float64   `json:"y_range" yaml:"y_range"` // half-width of the y window
	Points      int       `json:"points" yaml:"points"`
	At          []float64 `json:"at,omitempty" yaml:"at"` // extra x values to evaluate
	Clip        bool      `json:"clip" yaml:"clip"`
	Format      string    `json:"format" yaml:"format"` // "text", "json" or "csv"
	Verbose     bool      `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Family:  FamilyAuto,
		XRange:  10,
		YRange:  10,
		Points:  sample.DefaultPoints,
		Format:  "text",
		Verbose: false,
	}
}

// LoadConfig overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate checks the ranges, the point count, the family and the format.
func (c Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("invalid axis range x=%v y=%v: %w", c.XRange, c.YRange, err)
	}
	if c.Points < 1 {
		return fmt.Errorf("points must be positive, got %d", c.Points)
	}
	if c.Family != FamilyAuto && !slices.Contains(recognize.Names(), strings.ToLower(c.Family)) {
		return fmt.Errorf("unknown family: %s (available: %s, %v)", c.Family, FamilyAuto, recognize.Names())
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format: %s (available: %v)", c.Format, Formats)
	}
	return nil
}

// Range is the symmetric window described by XRange and YRange.
func (c Config) Range() sample.Range {
	return sample.Symmetric(c.XRange, c.YRange)
}
