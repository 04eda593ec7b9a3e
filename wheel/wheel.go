package wheel

import (
	"math"
)

// FullTurn is one complete rotation in radians
const FullTurn = 2 * math.Pi

// Segment is a contiguous half-open arc [Start, End) assigned to one entry
type Segment struct {
	Entry Entry
	Start float64
	End   float64
}

// Width returns the angular span of the segment
func (s Segment) Width() float64 {
	return s.End - s.Start
}

// Wheel owns the segment layout and the current rotation of the face.
// Segments partition [0, 2π) exactly, ordered as the input snapshot,
// widths proportional to weight. Rotation is mutated only by the
// Spinner while a run is active, or reset to zero on Rebuild
type Wheel struct {
	segments []Segment
	rotation float64

	// Presentation geometry, updated by Resize only.
	// Never consulted for winner resolution
	centerX, centerY int
	radiusX, radiusY float64
}

// New creates an empty wheel
func New() *Wheel {
	return &Wheel{}
}

// Rebuild replaces the layout wholly from an entry snapshot and resets
// rotation to zero. Zero usable entries leaves a valid empty wheel
func (w *Wheel) Rebuild(entries []Entry) {
	snap := Snapshot(entries)
	w.segments = w.segments[:0]
	w.rotation = 0

	if len(snap) == 0 {
		return
	}

	var total float64
	for _, e := range snap {
		total += e.Weight
	}

	cum := 0.0
	for i, e := range snap {
		start := cum / total * FullTurn
		cum += e.Weight
		end := cum / total * FullTurn
		if i == len(snap)-1 {
			// Close the circle exactly, no float gap after the last arc
			end = FullTurn
		}
		w.segments = append(w.segments, Segment{Entry: e, Start: start, End: end})
	}
}

// HasSegments reports whether the last Rebuild produced a usable wheel
func (w *Wheel) HasSegments() bool {
	return len(w.segments) > 0
}

// Segments returns the current layout, ordered as the input snapshot
func (w *Wheel) Segments() []Segment {
	return w.segments
}

// SegmentWidths returns the arc widths, the selection weights for a spin
func (w *Wheel) SegmentWidths() []float64 {
	widths := make([]float64, len(w.segments))
	for i, s := range w.segments {
		widths[i] = s.Width()
	}
	return widths
}

// Rotation returns the current absolute angle of the face reference mark
func (w *Wheel) Rotation() float64 {
	return w.rotation
}

// SetRotation sets the face angle, Spinner-owned while a run is active
func (w *Wheel) SetRotation(r float64) {
	w.rotation = r
}

// ResolveAngle normalizes an absolute angle into [0, 2π) and returns the
// segment containing it. Half-open arcs make this total over the circle:
// a boundary angle belongs to the segment that starts there. The ok
// result is false only for an empty wheel
func (w *Wheel) ResolveAngle(angle float64) (Segment, bool) {
	idx, ok := w.ResolveIndex(angle)
	if !ok {
		return Segment{}, false
	}
	return w.segments[idx], true
}

// ResolveIndex is ResolveAngle returning the segment's position instead
func (w *Wheel) ResolveIndex(angle float64) (int, bool) {
	if len(w.segments) == 0 {
		return 0, false
	}
	a := NormalizeAngle(angle)
	for i, s := range w.segments {
		if a >= s.Start && a < s.End {
			return i, true
		}
	}
	// a == FullTurn is unreachable after normalization; any float tail
	// past the last Start still lands in the closing arc
	return len(w.segments) - 1, true
}

// NormalizeAngle wraps an angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	m := math.Mod(a, FullTurn)
	if m < 0 {
		m += FullTurn
	}
	return m
}

// Resize recomputes cell-grid drawing geometry for the given area.
// Terminal cells are roughly twice as tall as wide, so the horizontal
// radius is stretched to keep the wheel visually round. Segment angles
// and rotation are untouched
func (w *Wheel) Resize(width, height int) {
	w.centerX = width / 2
	w.centerY = height / 2

	ry := float64(height)/2 - 1
	if ry < 1 {
		ry = 1
	}
	rx := ry * 2
	if maxX := float64(width)/2 - 1; rx > maxX {
		rx = maxX
		if rx < 1 {
			rx = 1
		}
	}
	w.radiusX, w.radiusY = rx, ry
}

// Geometry returns the drawing center and radii from the last Resize
func (w *Wheel) Geometry() (cx, cy int, rx, ry float64) {
	return w.centerX, w.centerY, w.radiusX, w.radiusY
}
