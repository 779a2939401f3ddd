// Package region computes per-monitor usable rectangles: monitor geometry
// minus the space panels reserve via struts. It answers which monitor owns a
// rectangle and how to keep candidate window geometry out of reserved space.
package region

import (
	"math"

	"github.com/snaptile/snaptile/internal/geometry"
)

// UsableRegion owns the current monitor list and strut list and keeps the
// derived usable rectangle per monitor. Every mutation recomputes from
// scratch; there is no incremental update. With no monitors set, all queries
// report no result. A monitor whose usable rectangle is fully reserved is
// hidden from queries but stays owned, so removing the strut brings it back.
//
// A single instance is owned by the daemon and mutated only on topology
// change events, so no locking is needed here.
type UsableRegion struct {
	monitors []geometry.Rect
	struts   []geometry.StrutPartial

	desktop    geometry.Rect
	usable     []geometry.Rect // parallel to monitors
	strutRects []geometry.StrutRect
}

// New returns an empty region.
func New() *UsableRegion {
	return &UsableRegion{}
}

// SetMonitors replaces the monitor list. Monitors with no area are discarded.
func (u *UsableRegion) SetMonitors(monitors []geometry.Rect) {
	u.monitors = u.monitors[:0]
	for _, m := range monitors {
		if m.Empty() {
			continue
		}
		u.monitors = append(u.monitors, m)
	}
	u.recompute()
}

// SetStruts replaces the panel reservation list.
func (u *UsableRegion) SetStruts(struts []geometry.StrutPartial) {
	u.struts = append(u.struts[:0], struts...)
	u.recompute()
}

// Monitors returns the monitor rectangles that currently have usable area.
func (u *UsableRegion) Monitors() []geometry.Rect {
	out := make([]geometry.Rect, 0, len(u.monitors))
	for i, m := range u.monitors {
		if u.usable[i].Empty() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Desktop returns the bounding box of all monitors, unioned with the origin.
func (u *UsableRegion) Desktop() geometry.Rect {
	return u.desktop
}

// recompute rebuilds the desktop bounds, resolved strut rectangles, and the
// usable rectangle for each monitor. The owned monitor list is never touched
// here: a monitor whose usable rectangle comes out empty (fully reserved)
// keeps its slot and is skipped by the queries, so a later SetStruts call can
// restore it.
func (u *UsableRegion) recompute() {
	u.usable = u.usable[:0]
	u.strutRects = u.strutRects[:0]
	if len(u.monitors) == 0 {
		u.desktop = geometry.Rect{}
		return
	}

	// Union with the origin so struts declared against the root window
	// resolve consistently even when no monitor touches (0,0).
	desktop := geometry.NewRect(0, 0, 0, 0)
	for _, m := range u.monitors {
		desktop = desktop.Union(m)
	}
	u.desktop = desktop

	// Struts resolve against the desktop bounds, not individual monitors.
	// A panel spanning several adjoining monitors is attributed to each of
	// them through plain geometric overlap, and a full-width strut that only
	// touches one monitor's edge (unequal monitor heights) stays confined to
	// that monitor.
	for _, s := range u.struts {
		u.strutRects = append(u.strutRects, s.AsRects(desktop)...)
	}

	for _, m := range u.monitors {
		usable := m
		for _, sr := range u.strutRects {
			usable = usable.Subtract(sr.Rect)
		}
		u.usable = append(u.usable, usable)
	}
}

// FindMonitor returns the raw monitor rectangle whose area contains rect's
// center point. When the center lands outside every monitor (a window dragged
// off-screen), the nearest monitor by center distance is returned instead.
// ok is false when no monitors are configured or every monitor is fully
// reserved.
func (u *UsableRegion) FindMonitor(rect geometry.Rect) (geometry.Rect, bool) {
	cx, cy := rect.Center()
	for i, m := range u.monitors {
		if u.usable[i].Empty() {
			continue
		}
		if m.ContainsPoint(cx, cy) {
			return m, true
		}
	}

	best := -1
	bestDist := math.Inf(1)
	for i, m := range u.monitors {
		if u.usable[i].Empty() {
			continue
		}
		mx, my := m.Center()
		d := math.Hypot(float64(cx-mx), float64(cy-my))
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return geometry.Rect{}, false
	}
	return u.monitors[best], true
}

// UsableFor returns the usable rectangle for a monitor previously returned by
// FindMonitor or Monitors.
func (u *UsableRegion) UsableFor(monitor geometry.Rect) (geometry.Rect, bool) {
	for i, m := range u.monitors {
		if m == monitor && !u.usable[i].Empty() {
			return u.usable[i], true
		}
	}
	return geometry.Rect{}, false
}

// ClipToUsable intersects rect with the usable rectangle of its owning
// monitor. ok is false only when no monitor owns the rectangle at all; a
// rectangle lying entirely inside reserved space yields ok with an empty
// result, which callers must treat as "nowhere to put this".
func (u *UsableRegion) ClipToUsable(rect geometry.Rect) (geometry.Rect, bool) {
	monitor, ok := u.FindMonitor(rect)
	if !ok {
		return geometry.Rect{}, false
	}
	usable, ok := u.UsableFor(monitor)
	if !ok {
		return geometry.Rect{}, false
	}
	return rect.Intersect(usable), true
}

// maxPushPasses bounds the push iteration in MoveToUsable. Two partial-span
// struts can shuttle a rectangle back and forth indefinitely; after this many
// passes the rectangle settles in the conservative usable area instead.
const maxPushPasses = 4

// MoveToUsable translates rect (never resizing it) so it no longer overlaps
// reserved space on its owning monitor, pushing toward whichever side the
// overlap's position indicates, with the same center-relative tie-break as
// Rect.Subtract. A rectangle already clear of reserved space is returned
// unchanged. Pushes repeat until no reservation overlaps, since escaping one
// strut can land the rectangle in another's partial span.
func (u *UsableRegion) MoveToUsable(rect geometry.Rect) (geometry.Rect, bool) {
	monitor, ok := u.FindMonitor(rect)
	if !ok {
		return geometry.Rect{}, false
	}

	moved := rect
	for pass := 0; pass < maxPushPasses; pass++ {
		displaced := false
		for _, sr := range u.strutRects {
			if sr.Rect.Intersect(monitor).Empty() {
				continue
			}
			overlap := moved.Intersect(sr.Rect)
			if overlap.Empty() {
				continue
			}
			displaced = true
			if overlap.Width < overlap.Height {
				if overlap.X+overlap.X2() < moved.X+moved.X2() {
					moved.X = sr.Rect.X2()
				} else {
					moved.X = sr.Rect.X - moved.Width
				}
			} else {
				if overlap.Y+overlap.Y2() < moved.Y+moved.Y2() {
					moved.Y = sr.Rect.Y2()
				} else {
					moved.Y = sr.Rect.Y - moved.Height
				}
			}
		}
		if !displaced {
			return moved, true
		}
	}

	// The pushes did not settle; the usable rectangle is disjoint from every
	// reservation by construction, so clamping into it always clears.
	if usable, ok := u.UsableFor(monitor); ok {
		return moved.MovedInto(usable, true), true
	}
	return moved, true
}
