package geometry

import "math"

// Edge identifies which desktop edge a strut rectangle was reserved on.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "edge(?)"
}

// fullSpan marks a start/end pair that covers the whole edge. Struts built
// from _NET_WM_STRUT (no partial ranges) use it; AsRects clips against the
// desktop bounds so the sentinel never leaks into results.
const fullSpan = math.MaxInt32

// StrutPartial mirrors the _NET_WM_STRUT_PARTIAL hint: a thickness reserved
// on each desktop edge, with an inclusive start/end span along the
// perpendicular axis restricting where on that edge the reservation applies.
type StrutPartial struct {
	Left   int
	Right  int
	Top    int
	Bottom int

	LeftStartY   int
	LeftEndY     int
	RightStartY  int
	RightEndY    int
	TopStartX    int
	TopEndX      int
	BottomStartX int
	BottomEndX   int
}

// NewStrut builds a strut with per-edge thicknesses whose spans cover the
// full edge, matching the semantics of the non-partial _NET_WM_STRUT hint.
func NewStrut(left, right, top, bottom int) StrutPartial {
	return StrutPartial{
		Left: left, Right: right, Top: top, Bottom: bottom,
		LeftEndY: fullSpan, RightEndY: fullSpan,
		TopEndX: fullSpan, BottomEndX: fullSpan,
	}
}

// StrutRect is a resolved reservation: the reserved rectangle plus the edge
// it was declared on.
type StrutRect struct {
	Edge Edge
	Rect Rect
}

// AsRects resolves the strut into up to four reserved rectangles relative to
// the desktop bounding box. Each is intersected against the desktop and
// dropped when empty. Output order is left, right, top, bottom.
func (s StrutPartial) AsRects(desktop Rect) []StrutRect {
	candidates := []StrutRect{
		{EdgeLeft, RectFromCorners(
			desktop.X, s.LeftStartY,
			desktop.X+s.Left, s.LeftEndY+1)},
		{EdgeRight, RectFromCorners(
			desktop.X2()-s.Right, s.RightStartY,
			desktop.X2(), s.RightEndY+1)},
		{EdgeTop, RectFromCorners(
			s.TopStartX, desktop.Y,
			s.TopEndX+1, desktop.Y+s.Top)},
		{EdgeBottom, RectFromCorners(
			s.BottomStartX, desktop.Y2()-s.Bottom,
			s.BottomEndX+1, desktop.Y2())},
	}
	thickness := []int{s.Left, s.Right, s.Top, s.Bottom}

	rects := make([]StrutRect, 0, 4)
	for i, c := range candidates {
		if thickness[i] <= 0 {
			continue
		}
		c.Rect = c.Rect.Intersect(desktop)
		if c.Rect.Empty() {
			continue
		}
		rects = append(rects, c)
	}
	return rects
}
