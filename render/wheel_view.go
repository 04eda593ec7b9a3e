// Package render draws the wheel and its legend onto a tcell screen.
// Drawing is idempotent: it reads segments and rotation, never mutates
// them, and may run at any time including while the wheel is empty
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"spinpick/wheel"
)

const legendWidth = 26

// WheelView renders a Wheel plus legend, status line and winner banner
type WheelView struct {
	wheel  *wheel.Wheel
	banner string
	status string
}

// NewWheelView creates a view over the given wheel
func NewWheelView(w *wheel.Wheel) *WheelView {
	return &WheelView{wheel: w}
}

// SetBanner shows a centered winner banner until cleared
func (v *WheelView) SetBanner(text string) { v.banner = text }

// ClearBanner hides the winner banner
func (v *WheelView) ClearBanner() { v.banner = "" }

// SetStatus sets the bottom status line
func (v *WheelView) SetStatus(text string) { v.status = text }

// WheelArea returns the cell region the wheel disk occupies for the
// given screen size; Resize on the wheel should receive these bounds
func (v *WheelView) WheelArea(screenW, screenH int) (w, h int) {
	w = screenW - legendWidth
	if w < 1 {
		w = screenW
	}
	h = screenH - 1 // status line
	if h < 1 {
		h = screenH
	}
	return w, h
}

// Draw renders one frame
func (v *WheelView) Draw(screen tcell.Screen) {
	screen.Clear()
	screenW, screenH := screen.Size()
	areaW, areaH := v.WheelArea(screenW, screenH)

	segments := v.wheel.Segments()
	if len(segments) == 0 {
		v.drawCentered(screen, screenW/2, screenH/2, "no enabled entries", tcell.StyleDefault.Foreground(statusFg))
		v.drawStatus(screen, screenW, screenH)
		screen.Show()
		return
	}

	cx, cy, rx, ry := v.wheel.Geometry()
	if rx <= 0 || ry <= 0 {
		v.wheel.Resize(areaW, areaH)
		cx, cy, rx, ry = v.wheel.Geometry()
	}
	rotation := v.wheel.Rotation()

	for y := 0; y < areaH; y++ {
		for x := 0; x < areaW; x++ {
			dx := float64(x-cx) / rx
			dy := float64(y-cy) / ry
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			if d2 > 0.90 {
				screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(rimColor))
				continue
			}
			// Screen angle measured from the pointer direction (+x),
			// counter-clockwise; the face angle visible there trails
			// the rotation so the pointer always reads face == rotation
			phi := math.Atan2(-dy, dx)
			face := wheel.NormalizeAngle(phi + rotation)
			idx := v.segmentAt(segments, face)
			style := tcell.StyleDefault.Background(SegmentColor(idx, len(segments)))
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	// Fixed pointer at screen angle zero, reading inward
	px := cx + int(rx) + 1
	if px >= areaW {
		px = areaW - 1
	}
	screen.SetContent(px, cy, '◀', nil, tcell.StyleDefault.Foreground(pointerColor).Bold(true))

	v.drawLegend(screen, segments, rotation, areaW, screenW, screenH)
	v.drawStatus(screen, screenW, screenH)

	if v.banner != "" {
		v.drawBanner(screen, screenW, screenH)
	}

	screen.Show()
}

// segmentAt finds the segment index containing a face angle
func (v *WheelView) segmentAt(segments []wheel.Segment, face float64) int {
	for i, s := range segments {
		if face >= s.Start && face < s.End {
			return i
		}
	}
	return len(segments) - 1
}

func (v *WheelView) drawLegend(screen tcell.Screen, segments []wheel.Segment, rotation float64, x0, screenW, screenH int) {
	if screenW-x0 < 8 {
		return
	}
	under := v.segmentAt(segments, wheel.NormalizeAngle(rotation))

	y := 1
	for i, s := range segments {
		if y >= screenH-1 {
			break
		}
		style := tcell.StyleDefault
		marker := ' '
		if i == under {
			marker = '◀'
			style = style.Bold(true)
		}
		swatch := tcell.StyleDefault.Foreground(SegmentColor(i, len(segments)))
		screen.SetContent(x0+1, y, '█', nil, swatch)
		screen.SetContent(x0+2, y, '█', nil, swatch)

		label := fmt.Sprintf("%-14.14s ×%.1f", s.Entry.Name, s.Entry.Weight)
		v.drawText(screen, x0+4, y, label, style)
		screen.SetContent(x0+4+len([]rune(label))+1, y, marker, nil, style)
		y++
	}
}

func (v *WheelView) drawStatus(screen tcell.Screen, screenW, screenH int) {
	if v.status == "" {
		return
	}
	v.drawText(screen, 1, screenH-1, v.status, tcell.StyleDefault.Foreground(statusFg))
}

func (v *WheelView) drawBanner(screen tcell.Screen, screenW, screenH int) {
	text := " " + v.banner + " "
	style := tcell.StyleDefault.Foreground(bannerFg).Background(bannerBg).Bold(true)
	v.drawCentered(screen, screenW/2, screenH/2, text, style)
}

func (v *WheelView) drawCentered(screen tcell.Screen, cx, cy int, text string, style tcell.Style) {
	runes := []rune(text)
	x := cx - len(runes)/2
	for i, r := range runes {
		screen.SetContent(x+i, cy, r, nil, style)
	}
}

func (v *WheelView) drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
