package config

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Input formats.
const (
	FormatExcel     = "excel"
	FormatWorkspace = "workspace"
)

// Log formats.
const (
	LogJSON = "json"
	LogText = "text"
)

// Decision rule names.
const (
	DecisionLiteral   = "literal"
	DecisionChiSquare = "chisquare"
)

// Config represents the analysis configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Input    InputConfig    `yaml:"input"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Control  ControlConfig  `yaml:"control"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if err := c.Control.Validate(); err != nil {
		return fmt.Errorf("control: %w", err)
	}

	return nil
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  slog.Level `yaml:"level"`
	Format string     `yaml:"format"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(LogJSON, LogText)),
	)
}

// InputConfig locates the keycode data.
//
// Path is a CSV file for FormatExcel and a directory of workspace CSVs for
// FormatWorkspace. LabelTrim characters are cut from the end of every region
// name. When Domain is set, only the keycodes listed under Domains[Domain]
// are kept.
type InputConfig struct {
	Path      string              `yaml:"path"`
	Format    string              `yaml:"format"`
	LabelTrim int                 `yaml:"label_trim"`
	Domain    string              `yaml:"domain"`
	Domains   map[string][]string `yaml:"domains"`
}

// Validate validates the input configuration. Path may be empty here; the
// CLI can supply it with a flag, and the runner checks it before reading.
func (c *InputConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(FormatExcel, FormatWorkspace)),
		validation.Field(&c.LabelTrim, validation.Min(0)),
	); err != nil {
		return err
	}
	if c.Domain != "" {
		if _, ok := c.Domains[c.Domain]; !ok {
			return fmt.Errorf("domain %q is not listed under domains", c.Domain)
		}
	}

	return nil
}

// AnalysisConfig holds the parameters of the pipeline stages.
type AnalysisConfig struct {
	Alpha        float64 `yaml:"alpha"`
	Decision     string  `yaml:"decision"`
	Total        int     `yaml:"total"` // 0: number of distinct keycodes
	Cost         float64 `yaml:"cost"`
	LegacyOffset bool    `yaml:"legacy_offset"`
	MinWeight    float64 `yaml:"min_weight"` // 0: no weight pruning
	TopN         int     `yaml:"top_n"`
	Parallelism  int     `yaml:"parallelism"`
	ZTransform   bool    `yaml:"z_transform"`
	Influence    bool    `yaml:"influence"`
}

// Validate validates the analysis configuration.
func (c *AnalysisConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Alpha, validation.Min(0.0)),
		validation.Field(&c.Decision, validation.Required, validation.In(DecisionLiteral, DecisionChiSquare)),
		validation.Field(&c.Total, validation.Min(0)),
		validation.Field(&c.Cost, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.MinWeight, validation.Min(0.0)),
		validation.Field(&c.TopN, validation.Min(0)),
		validation.Field(&c.Parallelism, validation.Required, validation.Min(1)),
	)
}

// ControlConfig configures the resampled control network.
type ControlConfig struct {
	Enabled    bool  `yaml:"enabled"`
	Studies    int   `yaml:"studies"`
	Iterations int   `yaml:"iterations"`
	Seed       int64 `yaml:"seed"`
}

// Validate validates the control configuration.
func (c *ControlConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.Studies, validation.Required, validation.Min(1)),
		validation.Field(&c.Iterations, validation.Required, validation.Min(1)),
	)
}

// NewDefaultConfig returns a Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: LogText,
		},
		Input: InputConfig{
			Format: FormatExcel,
		},
		Analysis: AnalysisConfig{
			Alpha:       3.84,
			Decision:    DecisionLiteral,
			Cost:        1,
			TopN:        5,
			Parallelism: 1,
			Influence:   true,
		},
		Control: ControlConfig{
			Studies:    100,
			Iterations: 50,
		},
	}
}
