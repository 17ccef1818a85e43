// Package manifest reads payload manifests and supplies fresh item lists to
// the Monte Carlo driver.
//
// Two formats are accepted. The text format has one `name=weight` entry per
// line; blank lines and lines starting with '#' are skipped. The YAML format
// is selected by a .yaml or .yml extension:
//
//	name: phase-1
//	items:
//	  - name: building tools
//	    weight: 2000
package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cargosim/cargosim/sim"
)

// ErrManifestUnreadable wraps every failure to read or parse a manifest.
var ErrManifestUnreadable = errors.New("manifest unreadable")

// Manifest is an ordered, validated list of payload items.
type Manifest struct {
	Name  string
	items []sim.Item
}

// New builds a manifest from items after validating their weights.
func New(name string, items []sim.Item) (*Manifest, error) {
	for i, it := range items {
		if err := validateWeight(it.Weight); err != nil {
			return nil, fmt.Errorf("%w: %s: item %d (%s): %v", ErrManifestUnreadable, name, i, it.Name, err)
		}
	}
	return &Manifest{Name: name, items: append([]sim.Item(nil), items...)}, nil
}

// Items returns a fresh copy of the manifest's items. Never returns an error;
// the signature satisfies sim.ManifestSource.
func (m *Manifest) Items() ([]sim.Item, error) {
	return append([]sim.Item(nil), m.items...), nil
}

// Len is the number of items in the manifest.
func (m *Manifest) Len() int {
	return len(m.items)
}

// TotalWeight is the summed payload weight.
func (m *Manifest) TotalWeight() float64 {
	return sim.TotalWeight(m.items)
}

// Parse reads the `name=weight` text format.
func Parse(name string, r io.Reader) (*Manifest, error) {
	var items []sim.Item
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, raw, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %s:%d: expected name=weight, got %q", ErrManifestUnreadable, name, lineNo, line)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: invalid weight %q", ErrManifestUnreadable, name, lineNo, strings.TrimSpace(raw))
		}
		if err := validateWeight(weight); err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrManifestUnreadable, name, lineNo, err)
		}
		items = append(items, sim.Item{Name: strings.TrimSpace(label), Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestUnreadable, name, err)
	}
	return &Manifest{Name: name, items: items}, nil
}

type yamlManifest struct {
	Name  string     `yaml:"name"`
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// ParseYAML reads the YAML format. Uses strict parsing: unrecognized keys
// (typos) are rejected.
func ParseYAML(name string, data []byte) (*Manifest, error) {
	var doc yamlManifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrManifestUnreadable, name, err)
	}
	if doc.Name != "" {
		name = doc.Name
	}
	items := make([]sim.Item, len(doc.Items))
	for i, it := range doc.Items {
		items[i] = sim.Item{Name: it.Name, Weight: it.Weight}
	}
	return New(name, items)
}

// LoadFile reads a manifest from path, choosing the format by extension.
// The manifest is named after the file's base name unless the YAML document
// names it.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(name, data)
	default:
		return Parse(name, bytes.NewReader(data))
	}
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight must be a finite number, got %f", w)
	}
	if w <= 0 {
		return fmt.Errorf("weight must be positive, got %f", w)
	}
	return nil
}
