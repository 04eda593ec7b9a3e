package render

import "github.com/gdamore/tcell/v2"

// Segment palette, cycled by segment index. Seven hues so small wheels
// never repeat and the first/last wrap collision stays rare
var segmentPalette = []tcell.Color{
	tcell.NewRGBColor(204, 68, 68),
	tcell.NewRGBColor(68, 160, 84),
	tcell.NewRGBColor(208, 176, 48),
	tcell.NewRGBColor(72, 112, 200),
	tcell.NewRGBColor(160, 84, 184),
	tcell.NewRGBColor(60, 172, 172),
	tcell.NewRGBColor(212, 124, 48),
}

// SegmentColor returns the fill color for segment i of count.
// When the cycle would make the closing segment match the opening one,
// the closing segment is nudged to the next hue
func SegmentColor(i, count int) tcell.Color {
	n := len(segmentPalette)
	if i == count-1 && count > 1 && i%n == 0 {
		return segmentPalette[1]
	}
	return segmentPalette[i%n]
}

var (
	rimColor     = tcell.NewRGBColor(96, 96, 104)
	pointerColor = tcell.NewRGBColor(240, 240, 240)
	bannerFg     = tcell.NewRGBColor(255, 255, 255)
	bannerBg     = tcell.NewRGBColor(120, 40, 40)
	statusFg     = tcell.NewRGBColor(176, 176, 176)
)
