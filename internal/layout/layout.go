// Package layout resolves fractional window presets into absolute pixel
// rectangles and implements the press-again-to-cycle preset stepping used by
// the placement commands.
package layout

import (
	"math"

	"github.com/snaptile/snaptile/internal/geometry"
)

// DefaultCycleTolerance is the fraction of the monitor diagonal within which
// a window counts as already occupying a preset.
const DefaultCycleTolerance = 0.1

// Preset is a window geometry expressed as fractions (0..1) of a monitor's
// dimensions.
type Preset struct {
	X float64
	Y float64
	W float64
	H float64
}

// Resolve converts the preset to absolute pixels relative to monitor.
// Fractions truncate toward zero, matching the integer arithmetic used
// throughout the geometry package.
func (p Preset) Resolve(monitor geometry.Rect) geometry.Rect {
	return geometry.NewRect(
		monitor.X+int(float64(monitor.Width)*p.X),
		monitor.Y+int(float64(monitor.Height)*p.Y),
		int(float64(monitor.Width)*p.W),
		int(float64(monitor.Height)*p.H),
	)
}

// ResolveAll resolves a preset list against a monitor.
func ResolveAll(presets []Preset, monitor geometry.Rect) []geometry.Rect {
	rects := make([]geometry.Rect, len(presets))
	for i, p := range presets {
		rects[i] = p.Resolve(monitor)
	}
	return rects
}

// ClosestMatch returns the index of the haystack entry nearest to needle by
// Euclidean distance over the (x, y, width, height) tuple, along with that
// distance. Ties keep the lowest index. An empty haystack yields index -1.
func ClosestMatch(needle geometry.Rect, haystack []geometry.Rect) (float64, int) {
	bestDist := math.Inf(1)
	bestIdx := -1
	for i, r := range haystack {
		d := math.Sqrt(
			sq(needle.X-r.X) + sq(needle.Y-r.Y) +
				sq(needle.Width-r.Width) + sq(needle.Height-r.Height))
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestDist, bestIdx
}

func sq(d int) float64 { return float64(d) * float64(d) }

// NextPreset picks the preset index a window should move to next. A window
// within tolerance of preset K (tolerance scaled by the monitor diagonal)
// advances to K+1 with wraparound; a window matching nothing snaps back to
// the first preset. Returns -1 for an empty preset list.
func NextPreset(current geometry.Rect, presets []geometry.Rect, monitor geometry.Rect, tolerance float64) int {
	if len(presets) == 0 {
		return -1
	}
	if tolerance <= 0 {
		tolerance = DefaultCycleTolerance
	}
	dist, idx := ClosestMatch(current, presets)
	diagonal := math.Hypot(float64(monitor.Width), float64(monitor.Height))
	if dist <= diagonal*tolerance {
		return (idx + 1) % len(presets)
	}
	return 0
}

// GravityLayout generates fractional presets anchored at a gravity point,
// with optional margins expressed as fractions of the monitor dimensions.
type GravityLayout struct {
	MarginX float64
	MarginY float64
}

// Geom returns the preset for a box of the given fractional width and height
// anchored at gravity g. The anchor point doubles as the position, so e.g.
// GravityRight with width 0.5 yields the right half of the monitor.
func (gl GravityLayout) Geom(g geometry.Gravity, width, height float64) Preset {
	fx, fy := g.Offsets()
	return Preset{
		X: round3(fx - width*fx + gl.MarginX),
		Y: round3(fy - height*fy + gl.MarginY),
		W: round3(width - 2*gl.MarginX),
		H: round3(height - 2*gl.MarginY),
	}
}

// round3 keeps fractions at millesimal precision so generated tables compare
// cleanly in config dumps and tests.
func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// WinsplitPositions generates the classic WinSplit-style preset table for the
// given column count: per gravity, an ordered cycle of widths. Centered
// gravities cycle through full width then each column multiple; edge-anchored
// gravities start from half width instead.
func WinsplitPositions(columns int, gl GravityLayout) map[string][]Preset {
	if columns < 1 {
		columns = 1
	}
	colWidth := 1.0 / float64(columns)

	cycleWidths := make([]float64, 0, columns-1)
	for i := 1; i < columns; i++ {
		cycleWidths = append(cycleWidths, round3(colWidth*float64(i)))
	}
	middleWidths := append([]float64{1.0}, cycleWidths...)
	edgeWidths := append([]float64{0.5}, cycleWidths...)

	build := func(g geometry.Gravity, widths []float64, height float64) []Preset {
		presets := make([]Preset, len(widths))
		for i, w := range widths {
			presets[i] = gl.Geom(g, w, height)
		}
		return presets
	}

	return map[string][]Preset{
		"center":       build(geometry.GravityCenter, middleWidths, 1),
		"top":          build(geometry.GravityTop, middleWidths, 0.5),
		"bottom":       build(geometry.GravityBottom, middleWidths, 0.5),
		"left":         build(geometry.GravityLeft, edgeWidths, 1),
		"right":        build(geometry.GravityRight, edgeWidths, 1),
		"top-left":     build(geometry.GravityTopLeft, edgeWidths, 0.5),
		"top-right":    build(geometry.GravityTopRight, edgeWidths, 0.5),
		"bottom-left":  build(geometry.GravityBottomLeft, edgeWidths, 0.5),
		"bottom-right": build(geometry.GravityBottomRight, edgeWidths, 0.5),
	}
}
