package automata

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_ValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"nil rule", func(c *Config) { c.Rule = nil }, "rule"},
		{"base too small", func(c *Config) { c.Base = 1 }, "base"},
		{"base too large", func(c *Config) { c.Base = 37 }, "base"},
		{"even width", func(c *Config) { c.Width = 2 }, "width"},
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"width table too large", func(c *Config) { c.Width = 63 }, "width"},
		{"zero cells", func(c *Config) { c.Cells = 0 }, "cells"},
		{"negative generations", func(c *Config) { c.Generations = -5 }, "steps"},
		{"boundary fill out of base", func(c *Config) { c.Boundary = FixedBoundary(9) }, "boundary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfig_RuleRangeCheckedAtAssembly(t *testing.T) {
	// Validate doesn't know the rule bound (that's NewRule's contract), but
	// evolver assembly surfaces it before any stepping.
	cfg := DefaultConfig()
	cfg.Rule = big.NewInt(300)
	require.NoError(t, cfg.Validate())

	_, err := NewEvolver(cfg)
	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr)
}
