// Package testutil provides shared test infrastructure for the automata
// engine: the golden dataset of known-good runs and its loader.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden.json.
type GoldenDataset struct {
	Runs []GoldenRun `json:"runs"`
}

// GoldenRun is a single known-good run: a full configuration plus expected
// generation rows, rendered as alphabet digits. The expected rows were
// produced by an independent implementation, so they cross-check the
// canonical rule digit order rather than assume it.
type GoldenRun struct {
	Name     string            `json:"name"`
	Rule     string            `json:"rule"`
	Base     int               `json:"base"`
	Width    int               `json:"width"`
	Cells    int               `json:"cells"`
	Steps    int               `json:"steps"`
	Boundary string            `json:"boundary"`
	Pattern  string            `json:"pattern"`
	Expected map[string]string `json:"expected"` // generation index -> row
	Encoding string            `json:"encoding"` // rule table, MSB first
}

// LoadGolden reads testdata/golden.json relative to this package, so tests
// in any package of the module resolve the same dataset.
func LoadGolden(t *testing.T) *GoldenDataset {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate testutil package path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "testdata", "golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden dataset: %v", err)
	}
	var ds GoldenDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("parsing golden dataset: %v", err)
	}
	if len(ds.Runs) == 0 {
		t.Fatal("golden dataset has no runs")
	}
	return &ds
}
