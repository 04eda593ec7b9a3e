package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPreset = `{
  "name": "lunch",
  "entries": [
    {"name": "Pizza", "weight": 2},
    {"name": "Sushi", "weight": 1, "enabled": false},
    {"name": "Tacos", "weight": 0.5}
  ]
}`

func TestParseValidPreset(t *testing.T) {
	p, err := Parse([]byte(validPreset))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "lunch" {
		t.Errorf("name %q, want lunch", p.Name)
	}
	if len(p.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(p.Entries))
	}

	stored := p.StoreEntries()
	if !stored[0].Enabled {
		t.Error("enabled should default to true")
	}
	if stored[1].Enabled {
		t.Error("explicit enabled=false lost")
	}
	if stored[2].Name != "Tacos" || stored[2].Weight != 0.5 {
		t.Errorf("entry conversion wrong: %+v", stored[2])
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"missing name":       `{"entries": [{"name": "a", "weight": 1}]}`,
		"empty name":         `{"name": "", "entries": [{"name": "a", "weight": 1}]}`,
		"no entries":         `{"name": "x", "entries": []}`,
		"weight too high":    `{"name": "x", "entries": [{"name": "a", "weight": 50}]}`,
		"weight too low":     `{"name": "x", "entries": [{"name": "a", "weight": 0.01}]}`,
		"unknown field":      `{"name": "x", "bogus": 1, "entries": [{"name": "a", "weight": 1}]}`,
		"entry without name": `{"name": "x", "entries": [{"weight": 1}]}`,
		"not json":           `name: x`,
	}
	for label, body := range cases {
		if _, err := Parse([]byte(body)); err == nil {
			t.Errorf("%s: accepted", label)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lunch.json")
	if err := os.WriteFile(path, []byte(validPreset), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "lunch" {
		t.Errorf("name %q, want lunch", p.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	} else if !strings.Contains(err.Error(), "read preset") {
		t.Errorf("unexpected error shape: %v", err)
	}
}
