package x11

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/snaptile/snaptile/internal/geometry"
)

// The geometry package knows nothing about X gravity constants; the mapping
// lives here at the boundary.

var toXGravity = map[geometry.Gravity]int{
	geometry.GravityTopLeft:     xproto.GravityNorthWest,
	geometry.GravityTop:         xproto.GravityNorth,
	geometry.GravityTopRight:    xproto.GravityNorthEast,
	geometry.GravityLeft:        xproto.GravityWest,
	geometry.GravityCenter:      xproto.GravityCenter,
	geometry.GravityRight:       xproto.GravityEast,
	geometry.GravityBottomLeft:  xproto.GravitySouthWest,
	geometry.GravityBottom:      xproto.GravitySouth,
	geometry.GravityBottomRight: xproto.GravitySouthEast,
}

// XGravity translates an internal gravity to the xproto window gravity
// constant used in EWMH moveresize requests.
func XGravity(g geometry.Gravity) int {
	if xg, ok := toXGravity[g]; ok {
		return xg
	}
	return xproto.GravityNorthWest
}

// GravityFromX translates an xproto window gravity back to the internal
// enum. Unknown or bit-forget gravities map to top-left, the EWMH default.
func GravityFromX(xg int) geometry.Gravity {
	for g, v := range toXGravity {
		if v == xg {
			return g
		}
	}
	return geometry.GravityTopLeft
}
