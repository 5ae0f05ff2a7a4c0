// Package dataset loads domain sets for graph construction
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/lixenwraith/galaxy/graph"
)

// ErrEmptyDataset is returned when a file declares no domains
var ErrEmptyDataset = errors.New("dataset has no domains")

//go:embed sample.toml
var sample []byte

// Sample returns a fresh copy of the embedded NPSP dataset
func Sample() *graph.Dataset {
	ds, err := Parse(sample, "npsp")
	if err != nil {
		panic(fmt.Sprintf("embedded dataset: %v", err))
	}
	return ds
}

// Load reads a TOML dataset; the file name stands in for a missing name key
func Load(path string) (*graph.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds, err := Parse(data, name)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and checks a dataset
// Connections to absent ids are kept; graph construction skips them
func Parse(data []byte, name string) (*graph.Dataset, error) {
	var ds graph.Dataset
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&ds)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if ds.Name == "" {
		ds.Name = name
	}
	if err := Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate reports structural problems a graph cannot absorb
func Validate(ds *graph.Dataset) error {
	if len(ds.Domains) == 0 {
		return ErrEmptyDataset
	}

	var result *multierror.Error
	seen := make(map[string]bool, len(ds.Domains))
	for i, d := range ds.Domains {
		switch {
		case d.ID == "":
			result = multierror.Append(result, fmt.Errorf("domain %d: missing id", i))
		case seen[d.ID]:
			result = multierror.Append(result, fmt.Errorf("domain %q: duplicate id", d.ID))
		}
		seen[d.ID] = true
		if d.Weight < 0 || d.Foundational < 0 || d.ComponentCount < 0 || d.ConnectionCount < 0 {
			result = multierror.Append(result, fmt.Errorf("domain %q: negative weight or count", d.ID))
		}
	}
	for _, g := range ds.Groups {
		if g.X < 0 || g.X > 1 || g.Y < 0 || g.Y > 1 {
			result = multierror.Append(result, fmt.Errorf("group %q: center must be normalized to [0,1]", g.Name))
		}
	}
	return result.ErrorOrNil()
}
