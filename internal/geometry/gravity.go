package geometry

import "fmt"

// Gravity names one of nine anchor points on a rectangle. It selects which
// point of the rectangle an (x, y) coordinate refers to.
type Gravity int

const (
	GravityTopLeft Gravity = iota
	GravityTop
	GravityTopRight
	GravityLeft
	GravityCenter
	GravityRight
	GravityBottomLeft
	GravityBottom
	GravityBottomRight
)

var gravityOffsets = [...][2]float64{
	GravityTopLeft:     {0, 0},
	GravityTop:         {0.5, 0},
	GravityTopRight:    {1, 0},
	GravityLeft:        {0, 0.5},
	GravityCenter:      {0.5, 0.5},
	GravityRight:       {1, 0.5},
	GravityBottomLeft:  {0, 1},
	GravityBottom:      {0.5, 1},
	GravityBottomRight: {1, 1},
}

var gravityNames = [...]string{
	GravityTopLeft:     "top-left",
	GravityTop:         "top",
	GravityTopRight:    "top-right",
	GravityLeft:        "left",
	GravityCenter:      "center",
	GravityRight:       "right",
	GravityBottomLeft:  "bottom-left",
	GravityBottom:      "bottom",
	GravityBottomRight: "bottom-right",
}

// Gravities lists all nine gravities in reading order.
func Gravities() []Gravity {
	return []Gravity{
		GravityTopLeft, GravityTop, GravityTopRight,
		GravityLeft, GravityCenter, GravityRight,
		GravityBottomLeft, GravityBottom, GravityBottomRight,
	}
}

// Offsets returns the fractional anchor position in [0,1]x[0,1].
func (g Gravity) Offsets() (fx, fy float64) {
	if g < 0 || int(g) >= len(gravityOffsets) {
		return 0, 0
	}
	return gravityOffsets[g][0], gravityOffsets[g][1]
}

func (g Gravity) String() string {
	if g < 0 || int(g) >= len(gravityNames) {
		return fmt.Sprintf("gravity(%d)", int(g))
	}
	return gravityNames[g]
}

// ParseGravity resolves a gravity name as used in config files and command
// names ("top-left", "center", ...).
func ParseGravity(name string) (Gravity, error) {
	for g, n := range gravityNames {
		if n == name {
			return Gravity(g), nil
		}
	}
	return 0, fmt.Errorf("unknown gravity %q", name)
}
