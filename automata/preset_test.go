package automata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarios_Missing(t *testing.T) {
	_, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarios_Malformed(t *testing.T) {
	path := writeScenarios(t, "scenarios: [not: {valid")
	_, err := LoadScenarios(path)
	assert.Error(t, err)
}

func TestScenarioFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"unnamed scenario",
			"scenarios:\n  - rule: \"30\"\n",
			"has no name",
		},
		{
			"duplicate names",
			"scenarios:\n  - name: a\n  - name: a\n",
			"duplicate scenario name",
		},
		{
			"bad rule",
			"scenarios:\n  - name: a\n    rule: \"bogus\"\n",
			"scenario \"a\"",
		},
		{
			"bad boundary",
			"scenarios:\n  - name: a\n    boundary: wrap\n",
			"scenario \"a\"",
		},
		{
			"bad seeding",
			"scenarios:\n  - name: a\n    seeding: surprise\n",
			"scenario \"a\"",
		},
		{
			"rule out of range for base",
			"scenarios:\n  - name: a\n    rule: \"300\"\n",
			"scenario \"a\"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := LoadScenarios(writeScenarios(t, tt.yaml))
			require.NoError(t, err)
			err = file.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScenario_ConfigDefaults(t *testing.T) {
	// Zero-valued scenario fields fall back to DefaultConfig values.
	file, err := LoadScenarios(writeScenarios(t, "scenarios:\n  - name: bare\n"))
	require.NoError(t, err)
	s, ok := file.Find("bare")
	require.True(t, ok)

	cfg, err := s.Config()
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, 0, cfg.Rule.Cmp(def.Rule))
	assert.Equal(t, def.Base, cfg.Base)
	assert.Equal(t, def.Cells, cfg.Cells)
	assert.Equal(t, def.Generations, cfg.Generations)
	assert.Equal(t, def.Boundary, cfg.Boundary)
	assert.Equal(t, def.Seeding, cfg.Seeding)
}

func TestParseSeedPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		pattern string
		want    SeedKind
		wantErr bool
	}{
		{"explicit zero", "zero", "", SeedAllZero, false},
		{"explicit center", "center", "", SeedSingleActiveCenter, false},
		{"explicit random", "random", "", SeedRandom, false},
		{"explicit density", "random-density", "", SeedRandom, false},
		{"explicit pattern", "pattern", "101", SeedPattern, false},
		{"empty with pattern", "", "101", SeedPattern, false},
		{"empty without pattern", "", "", SeedPattern, false},
		{"unknown", "shuffle", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeedPolicy(tt.policy, tt.pattern, 1, 0.5)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}
