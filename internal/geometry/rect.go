// Package geometry provides the pure value types the placement engine works
// on: axis-aligned integer rectangles, symbolic gravities, and EWMH-style
// partial struts. Nothing in this package performs I/O or touches X11.
package geometry

import "errors"

// ErrInvalidGeometry is returned when a RectSpec supplies an ambiguous or
// incomplete combination of size and opposite-corner fields.
var ErrInvalidGeometry = errors.New("invalid geometry arguments")

// Rect is an axis-aligned rectangle with a top-left origin. Width and Height
// are always non-negative; the constructors normalize negative sizes by
// flipping the origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect builds a canonical rectangle, flipping the origin when a negative
// width or height is supplied so the stored form is always top-left anchored.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners builds a rectangle from two opposite corners. The corners
// may be given in any order.
func RectFromCorners(x1, y1, x2, y2 int) Rect {
	return NewRect(x1, y1, x2-x1, y2-y1)
}

// RectSpec describes a rectangle where each axis is given either a size or an
// opposite-corner coordinate. Exactly one of Width/X2 and one of Height/Y2
// must be set; Build rejects everything else. Used for payloads (config, IPC)
// where both forms are accepted.
type RectSpec struct {
	X      int  `json:"x" yaml:"x"`
	Y      int  `json:"y" yaml:"y"`
	Width  *int `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int `json:"height,omitempty" yaml:"height,omitempty"`
	X2     *int `json:"x2,omitempty" yaml:"x2,omitempty"`
	Y2     *int `json:"y2,omitempty" yaml:"y2,omitempty"`
}

// Build validates the spec and returns the canonical rectangle.
func (s RectSpec) Build() (Rect, error) {
	var width, height int
	switch {
	case s.Width != nil && s.X2 == nil:
		width = *s.Width
	case s.Width == nil && s.X2 != nil:
		width = *s.X2 - s.X
	default:
		return Rect{}, ErrInvalidGeometry
	}
	switch {
	case s.Height != nil && s.Y2 == nil:
		height = *s.Height
	case s.Height == nil && s.Y2 != nil:
		height = *s.Y2 - s.Y
	default:
		return Rect{}, ErrInvalidGeometry
	}
	return NewRect(s.X, s.Y, width, height), nil
}

// X2 returns the exclusive right edge.
func (r Rect) X2() int { return r.X + r.Width }

// Y2 returns the exclusive bottom edge.
func (r Rect) Y2() int { return r.Y + r.Height }

// Area returns width times height.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.Area() == 0 }

// Center returns the center point, truncated toward the origin.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersect returns the overlap of r and other. When they do not overlap the
// result is an empty rectangle anchored at the would-be overlap origin.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X2(), other.X2())
	y2 := min(r.Y2(), other.Y2())
	return Rect{X: x1, Y: y1, Width: max(0, x2-x1), Height: max(0, y2-y1)}
}

// Union returns the bounding box of r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.X2(), other.X2())
	y2 := max(r.Y2(), other.Y2())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether other lies entirely within r, boundary touches
// included. An empty rectangle sitting on the boundary still counts.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X2() <= r.X2() && other.Y2() <= r.Y2()
}

// ContainsPoint reports whether the point falls inside r. Edges are half-open
// so adjoining monitors never both claim a point.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// Subtract shrinks r away from other along whichever axis loses less area:
// the overlap's thinner dimension decides the axis, and the edge nearer the
// overlap's center (relative to r's center) is the one chopped. Returns r
// unchanged when there is no overlap.
//
// This is deliberately a single-rectangle approximation. When other bisects
// r the smaller remainder is discarded rather than returned as a second
// piece; the usable-region computation depends on this exact behavior.
func (r Rect) Subtract(other Rect) Rect {
	overlap := r.Intersect(other)
	if overlap.Empty() {
		return r
	}
	if overlap.Width < overlap.Height {
		// Compare doubled centers so odd sizes don't truncate the tie-break.
		if overlap.X+overlap.X2() < r.X+r.X2() {
			return Rect{X: overlap.X2(), Y: r.Y, Width: r.X2() - overlap.X2(), Height: r.Height}
		}
		return Rect{X: r.X, Y: r.Y, Width: overlap.X - r.X, Height: r.Height}
	}
	if overlap.Y+overlap.Y2() < r.Y+r.Y2() {
		return Rect{X: r.X, Y: overlap.Y2(), Width: r.Width, Height: r.Y2() - overlap.Y2()}
	}
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: overlap.Y - r.Y}
}

// ToGravity reinterprets r's origin as the point named by g instead of the
// top-left corner. The offset uses truncating integer arithmetic, so
// round-tripping through a fractional gravity on an odd dimension loses the
// half pixel in a defined way; FromGravity applies the same truncated offset
// and is therefore an exact inverse.
func (r Rect) ToGravity(g Gravity) Rect {
	fx, fy := g.Offsets()
	r.X += int(float64(r.Width) * fx)
	r.Y += int(float64(r.Height) * fy)
	return r
}

// FromGravity converts a rectangle whose origin names the point indicated by
// g back to top-left form. Exact inverse of ToGravity for the same gravity.
func (r Rect) FromGravity(g Gravity) Rect {
	fx, fy := g.Offsets()
	r.X -= int(float64(r.Width) * fx)
	r.Y -= int(float64(r.Height) * fy)
	return r
}

// ToRelative translates r into ref's coordinate space.
func (r Rect) ToRelative(ref Rect) Rect {
	r.X -= ref.X
	r.Y -= ref.Y
	return r
}

// FromRelative translates r out of ref's coordinate space. Exact inverse of
// ToRelative for any ref.
func (r Rect) FromRelative(ref Rect) Rect {
	r.X += ref.X
	r.Y += ref.Y
	return r
}

// MovedInto translates r so it fits within container, preferring to keep its
// size. With clip set, dimensions larger than the container are shrunk first;
// without it an oversized rectangle is anchored at the container's origin
// edge and allowed to overhang.
func (r Rect) MovedInto(container Rect, clip bool) Rect {
	if clip {
		if r.Width > container.Width {
			r.Width = container.Width
		}
		if r.Height > container.Height {
			r.Height = container.Height
		}
	}
	if r.X2() > container.X2() {
		r.X = container.X2() - r.Width
	}
	if r.X < container.X {
		r.X = container.X
	}
	if r.Y2() > container.Y2() {
		r.Y = container.Y2() - r.Height
	}
	if r.Y < container.Y {
		r.Y = container.Y
	}
	return r
}
