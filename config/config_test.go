package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DecisionLiteral, cfg.Analysis.Decision)
	assert.Equal(t, 1.0, cfg.Analysis.Cost)
}

func TestDecodeOverridesDefaultsAndExpandsEnv(t *testing.T) {
	t.Setenv("COACTIVE_DATA", "/data/regions.csv")
	yml := `
log:
  level: debug
  format: json
input:
  path: ${COACTIVE_DATA}
  label_trim: 4
analysis:
  alpha: 0.05
  decision: chisquare
  cost: 0.25
  parallelism: 4
control:
  enabled: true
  studies: 20
  iterations: 10
  seed: 7
`
	cfg := NewDefaultConfig()
	require.NoError(t, Decode([]byte(yml), cfg))

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "/data/regions.csv", cfg.Input.Path)
	assert.Equal(t, FormatExcel, cfg.Input.Format, "default kept")
	assert.Equal(t, 0.25, cfg.Analysis.Cost)
	assert.Equal(t, 5, cfg.Analysis.TopN, "default kept")
	assert.True(t, cfg.Control.Enabled)
	assert.Equal(t, int64(7), cfg.Control.Seed)
}

func TestValidationFailures(t *testing.T) {
	cases := map[string]func(c *Config){
		"cost":        func(c *Config) { c.Analysis.Cost = 1.5 },
		"decision":    func(c *Config) { c.Analysis.Decision = "bonferroni" },
		"parallelism": func(c *Config) { c.Analysis.Parallelism = 0 },
		"format":      func(c *Config) { c.Input.Format = "xlsx" },
		"log":         func(c *Config) { c.Log.Format = "xml" },
		"domain":      func(c *Config) { c.Input.Domain = "Emotion" },
		"control": func(c *Config) {
			c.Control.Enabled = true
			c.Control.Iterations = 0
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDomainListed(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Input.Domain = "Emotion"
	cfg.Input.Domains = map[string][]string{"Emotion": {"101", "102"}}
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  top_n: 3\n"), 0o600))

	cfg := NewDefaultConfig()
	require.NoError(t, Load(path, cfg))
	assert.Equal(t, 3, cfg.Analysis.TopN)

	err := Load(filepath.Join(dir, "missing.yaml"), cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to read config file"))

	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  cost: 2\n"), 0o600))
	err = Load(path, NewDefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadWithDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"), cfg))
	assert.Equal(t, NewDefaultConfig(), cfg)
	require.NoError(t, LoadWithDefaults("", cfg))
}
