package x11

import "testing"

func TestNormalWindowType(t *testing.T) {
	cases := []struct {
		name  string
		types []string
		want  bool
	}{
		{"no type set", nil, true},
		{"normal", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, true},
		// Typed but unrecognized windows are still placeable.
		{"dialog", []string{"_NET_WM_WINDOW_TYPE_DIALOG"}, true},
		{"vendor type", []string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE"}, true},
		{"dock", []string{"_NET_WM_WINDOW_TYPE_DOCK"}, false},
		{"desktop", []string{"_NET_WM_WINDOW_TYPE_DESKTOP"}, false},
		{"splash", []string{"_NET_WM_WINDOW_TYPE_SPLASH"}, false},
		{"notification", []string{"_NET_WM_WINDOW_TYPE_NOTIFICATION"}, false},
		// Any excluded entry wins over the rest of the list.
		{"dialog then dock", []string{"_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_DOCK"}, false},
	}
	for _, c := range cases {
		if got := normalWindowType(c.types); got != c.want {
			t.Fatalf("%s: normalWindowType(%v) = %v, want %v", c.name, c.types, got, c.want)
		}
	}
}
