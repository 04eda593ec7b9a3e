// Package preset loads named entry-list documents from JSON files.
// Documents are validated against an embedded schema before use, so a
// malformed preset is rejected as a whole instead of half-applied
package preset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"spinpick/store"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Preset is a named replacement entry list
type Preset struct {
	Name    string        `json:"name"`
	Entries []PresetEntry `json:"entries"`
}

// PresetEntry mirrors one stored entry; Enabled defaults to true
type PresetEntry struct {
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
	Enabled *bool   `json:"enabled,omitempty"`
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("preset.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// Load reads, validates and decodes one preset file
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes raw preset JSON
func Parse(data []byte) (*Preset, error) {
	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile preset schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	return &p, nil
}

// StoreEntries converts the preset into a replacement stored list
func (p *Preset) StoreEntries() []store.Entry {
	out := make([]store.Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		enabled := true
		if e.Enabled != nil {
			enabled = *e.Enabled
		}
		out = append(out, store.Entry{Name: e.Name, Weight: e.Weight, Enabled: enabled})
	}
	return out
}
