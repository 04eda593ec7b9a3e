package wheel

import (
	"strings"
)

const (
	// MinWeight and MaxWeight bound the usable weight band
	// Values outside are clamped before layout
	MinWeight = 0.1
	MaxWeight = 10.0
)

// Entry is one candidate on the wheel
type Entry struct {
	Name   string
	Weight float64
}

// ClampWeight forces a weight into the usable band
func ClampWeight(w float64) float64 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// Snapshot builds the immutable entry list used for one wheel build:
// names are trimmed, blank entries dropped, weights clamped.
// The source slice is never mutated
func Snapshot(entries []Entry) []Entry {
	snap := make([]Entry, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		snap = append(snap, Entry{Name: name, Weight: ClampWeight(e.Weight)})
	}
	return snap
}
