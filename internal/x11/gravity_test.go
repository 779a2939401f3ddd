package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/snaptile/snaptile/internal/geometry"
)

func TestGravityRoundTrip(t *testing.T) {
	for _, g := range geometry.Gravities() {
		if got := GravityFromX(XGravity(g)); got != g {
			t.Fatalf("round trip changed %v to %v", g, got)
		}
	}
}

func TestGravityDefaults(t *testing.T) {
	// Bit-forget gravity and anything unknown fall back to the EWMH default.
	if got := GravityFromX(xproto.GravityBitForget); got != geometry.GravityTopLeft {
		t.Fatalf("bit-forget mapped to %v, want top-left", got)
	}
	if got := XGravity(geometry.Gravity(99)); got != xproto.GravityNorthWest {
		t.Fatalf("unknown gravity mapped to %d, want north-west", got)
	}
}
