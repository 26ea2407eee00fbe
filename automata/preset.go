package automata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named preset run, loadable from a YAML file. Zero-valued
// fields fall back to the corresponding DefaultConfig values.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Rule        string  `yaml:"rule"` // decimal numeral or symbolic name
	Base        int     `yaml:"base"`
	Width       int     `yaml:"width"`
	Cells       int     `yaml:"cells"`
	Steps       int     `yaml:"steps"`
	Boundary    string  `yaml:"boundary"`
	Seeding     string  `yaml:"seeding"` // one of ValidSeedPolicies
	Pattern     string  `yaml:"pattern"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	Workers     int     `yaml:"workers"`
	KeepLast    int     `yaml:"keep_last"`
}

// ScenarioFile is the top-level shape of a presets YAML file.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ValidSeedPolicies is the set of recognized seeding policy names.
// Shared by Validate and ParseSeedPolicy to avoid duplication.
var ValidSeedPolicies = map[string]bool{"": true, "pattern": true, "zero": true, "center": true, "random": true, "random-density": true}

// LoadScenarios reads and parses a YAML presets file.
func LoadScenarios(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}
	return &file, nil
}

// Validate checks that every scenario has a name, a resolvable rule, and
// recognized policy names.
func (f *ScenarioFile) Validate() error {
	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if _, err := s.Config(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// Find returns the scenario with the given name.
func (f *ScenarioFile) Find(name string) (*Scenario, bool) {
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == name {
			return &f.Scenarios[i], true
		}
	}
	return nil, false
}

// Config resolves the scenario into a validated run configuration.
func (s *Scenario) Config() (Config, error) {
	cfg := DefaultConfig()

	if s.Rule != "" {
		id, err := ParseIdentifier(s.Rule)
		if err != nil {
			return Config{}, err
		}
		cfg.Rule = id
	}
	if s.Base != 0 {
		cfg.Base = s.Base
	}
	if s.Width != 0 {
		cfg.Width = s.Width
	}
	if s.Cells != 0 {
		cfg.Cells = s.Cells
	}
	if s.Steps != 0 {
		cfg.Generations = s.Steps
	}
	if s.Boundary != "" {
		b, err := ParseBoundary(s.Boundary)
		if err != nil {
			return Config{}, err
		}
		cfg.Boundary = b
	}
	seeding, err := ParseSeedPolicy(s.Seeding, s.Pattern, s.Seed, s.Density)
	if err != nil {
		return Config{}, err
	}
	cfg.Seeding = seeding
	if s.Workers != 0 {
		cfg.Workers = s.Workers
	}
	cfg.KeepLast = s.KeepLast

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseSeedPolicy resolves a seeding policy name plus its parameters into a
// SeedPolicy. An empty name selects "pattern", defaulting to the single
// active digit "1".
func ParseSeedPolicy(name, pattern string, seed int64, density float64) (SeedPolicy, error) {
	if !ValidSeedPolicies[name] {
		return SeedPolicy{}, &ConfigError{Field: "seeding", Reason: fmt.Sprintf("unknown policy %q", name)}
	}
	if name == "" {
		name = "pattern"
	}
	switch name {
	case "zero":
		return SeedPolicy{Kind: SeedAllZero}, nil
	case "center":
		return SeedPolicy{Kind: SeedSingleActiveCenter}, nil
	case "random":
		return SeedPolicy{Kind: SeedRandom, Seed: seed, Distribution: Uniform}, nil
	case "random-density":
		return SeedPolicy{Kind: SeedRandom, Seed: seed, Distribution: Density, Density: density}, nil
	default: // "pattern"
		if pattern == "" {
			pattern = "1"
		}
		return SeedPolicy{Kind: SeedPattern, Pattern: pattern}, nil
	}
}
