package region

import (
	"testing"

	"github.com/snaptile/snaptile/internal/geometry"
)

// threeMonitorRegion models a triple-head desktop with a 30px taskbar along
// the bottom, declared as two partial struts: one spanning the first two
// monitors and one on the third.
func threeMonitorRegion() *UsableRegion {
	u := New()
	u.SetMonitors([]geometry.Rect{
		geometry.NewRect(0, 56, 1280, 1024),
		geometry.NewRect(1280, 0, 1920, 1080),
		geometry.NewRect(3200, 56, 1280, 1024),
	})

	left := geometry.StrutPartial{Bottom: 30, BottomStartX: 0, BottomEndX: 3199}
	right := geometry.StrutPartial{Bottom: 30, BottomStartX: 3200, BottomEndX: 4479}
	u.SetStruts([]geometry.StrutPartial{left, right})
	return u
}

func TestDesktopBounds(t *testing.T) {
	u := threeMonitorRegion()
	want := geometry.NewRect(0, 0, 4480, 1080)
	if got := u.Desktop(); got != want {
		t.Fatalf("Desktop() = %+v, want %+v", got, want)
	}
}

func TestUsablePerMonitor(t *testing.T) {
	u := threeMonitorRegion()

	cases := []struct {
		monitor geometry.Rect
		want    geometry.Rect
	}{
		// Shorter outer monitors: the strut eats from y=1050 up, leaving 994.
		{geometry.NewRect(0, 56, 1280, 1024), geometry.NewRect(0, 56, 1280, 994)},
		// The taller center monitor keeps its full width, losing only the bar.
		{geometry.NewRect(1280, 0, 1920, 1080), geometry.NewRect(1280, 0, 1920, 1050)},
		{geometry.NewRect(3200, 56, 1280, 1024), geometry.NewRect(3200, 56, 1280, 994)},
	}
	for _, c := range cases {
		got, ok := u.UsableFor(c.monitor)
		if !ok {
			t.Fatalf("UsableFor(%+v): no result", c.monitor)
		}
		if got != c.want {
			t.Fatalf("UsableFor(%+v) = %+v, want %+v", c.monitor, got, c.want)
		}
	}
}

func TestFindMonitor(t *testing.T) {
	u := threeMonitorRegion()

	// Center containment.
	got, ok := u.FindMonitor(geometry.NewRect(1400, 100, 200, 200))
	if !ok || got != geometry.NewRect(1280, 0, 1920, 1080) {
		t.Fatalf("FindMonitor center case = %+v, %v", got, ok)
	}

	// Off every monitor: nearest center wins.
	got, ok = u.FindMonitor(geometry.NewRect(5000, 200, 1, 1))
	if !ok || got != geometry.NewRect(3200, 56, 1280, 1024) {
		t.Fatalf("FindMonitor off-screen case = %+v, %v", got, ok)
	}
}

func TestFindMonitor_NoMonitors(t *testing.T) {
	u := New()
	if _, ok := u.FindMonitor(geometry.NewRect(0, 0, 10, 10)); ok {
		t.Fatal("FindMonitor with no monitors should report no result")
	}
	if _, ok := u.ClipToUsable(geometry.NewRect(0, 0, 10, 10)); ok {
		t.Fatal("ClipToUsable with no monitors should report no result")
	}
	if _, ok := u.MoveToUsable(geometry.NewRect(0, 0, 10, 10)); ok {
		t.Fatal("MoveToUsable with no monitors should report no result")
	}
}

func TestClipToUsable(t *testing.T) {
	u := threeMonitorRegion()

	// Straddling the reserved bar: clipped to the usable part.
	got, ok := u.ClipToUsable(geometry.NewRect(0, 1040, 10, 20))
	if !ok {
		t.Fatal("expected a result")
	}
	if got != geometry.NewRect(0, 1040, 10, 10) {
		t.Fatalf("clip = %+v", got)
	}

	// Entirely outside the usable area still resolves to a monitor; the
	// intersection just comes back empty.
	got, ok = u.ClipToUsable(geometry.NewRect(0, 1277, 1, 1))
	if !ok {
		t.Fatal("owning monitor should still be found")
	}
	if !got.Empty() {
		t.Fatalf("expected empty clip, got %+v", got)
	}
}

func TestMoveToUsable(t *testing.T) {
	u := threeMonitorRegion()

	// Already clear: unchanged.
	in := geometry.NewRect(100, 100, 300, 300)
	if got, ok := u.MoveToUsable(in); !ok || got != in {
		t.Fatalf("clear rect moved: %+v, %v", got, ok)
	}

	// Overlapping the bottom bar from above: pushed up, size preserved.
	got, ok := u.MoveToUsable(geometry.NewRect(100, 1000, 300, 70))
	if !ok {
		t.Fatal("expected a result")
	}
	want := geometry.NewRect(100, 980, 300, 70)
	if got != want {
		t.Fatalf("MoveToUsable = %+v, want %+v", got, want)
	}
}

func TestSetStrutsRestoresFullyReservedMonitor(t *testing.T) {
	first := geometry.NewRect(0, 0, 1920, 1080)
	second := geometry.NewRect(1920, 0, 200, 1080)

	u := New()
	u.SetMonitors([]geometry.Rect{first, second})
	u.SetStruts([]geometry.StrutPartial{
		{Right: 200, RightStartY: 0, RightEndY: 1079},
	})
	if got := len(u.Monitors()); got != 1 {
		t.Fatalf("expected 1 visible monitor under the strut, got %d", got)
	}

	// The panel goes away: the swallowed monitor must come back without a
	// fresh SetMonitors call.
	u.SetStruts(nil)
	if got := len(u.Monitors()); got != 2 {
		t.Fatalf("expected 2 monitors after strut removal, got %d: %+v", got, u.Monitors())
	}
	usable, ok := u.UsableFor(second)
	if !ok || usable != second {
		t.Fatalf("restored monitor usable = %+v, %v", usable, ok)
	}
}

func TestMoveToUsable_EscapingOneStrutAvoidsAnother(t *testing.T) {
	// A left panel reserving only y 20..84 and a full-width bottom bar. The
	// upward push out of the bar would land inside the left panel's span;
	// the result must be clear of both.
	u := New()
	u.SetMonitors([]geometry.Rect{geometry.NewRect(0, 0, 100, 100)})
	u.SetStruts([]geometry.StrutPartial{
		{Left: 10, LeftStartY: 20, LeftEndY: 84},
		{Bottom: 10, BottomEndX: 99},
	})

	got, ok := u.MoveToUsable(geometry.NewRect(5, 85, 10, 10))
	if !ok {
		t.Fatal("expected a result")
	}
	want := geometry.NewRect(10, 80, 10, 10)
	if got != want {
		t.Fatalf("MoveToUsable = %+v, want %+v", got, want)
	}

	for _, sr := range []geometry.Rect{
		geometry.NewRect(0, 20, 10, 65),
		geometry.NewRect(0, 90, 100, 10),
	} {
		if !got.Intersect(sr).Empty() {
			t.Fatalf("result %+v still overlaps reservation %+v", got, sr)
		}
	}
}

func TestFullyReservedMonitorIsDropped(t *testing.T) {
	u := New()
	u.SetMonitors([]geometry.Rect{
		geometry.NewRect(0, 0, 1920, 1080),
		geometry.NewRect(1920, 0, 200, 1080),
	})
	// A side strut swallowing the whole second monitor.
	u.SetStruts([]geometry.StrutPartial{
		{Right: 200, RightStartY: 0, RightEndY: 1079},
	})

	monitors := u.Monitors()
	if len(monitors) != 1 {
		t.Fatalf("expected 1 surviving monitor, got %d: %+v", len(monitors), monitors)
	}
	if monitors[0] != geometry.NewRect(0, 0, 1920, 1080) {
		t.Fatalf("surviving monitor = %+v", monitors[0])
	}
}

func TestFullWidthStrutConfinedByMonitorHeight(t *testing.T) {
	// A top strut across the full desktop width only touches the monitor
	// whose area actually reaches the desktop's top edge.
	u := New()
	u.SetMonitors([]geometry.Rect{
		geometry.NewRect(0, 56, 1280, 1024),
		geometry.NewRect(1280, 0, 1920, 1080),
	})
	u.SetStruts([]geometry.StrutPartial{geometry.NewStrut(0, 0, 30, 0)})

	got, _ := u.UsableFor(geometry.NewRect(0, 56, 1280, 1024))
	if got != geometry.NewRect(0, 56, 1280, 1024) {
		t.Fatalf("short monitor should be untouched, got %+v", got)
	}
	got, _ = u.UsableFor(geometry.NewRect(1280, 0, 1920, 1080))
	if got != geometry.NewRect(1280, 30, 1920, 1050) {
		t.Fatalf("tall monitor usable = %+v", got)
	}
}

func TestEmptyMonitorsAreDiscarded(t *testing.T) {
	u := New()
	u.SetMonitors([]geometry.Rect{
		{},
		geometry.NewRect(0, 0, 800, 600),
		geometry.NewRect(10, 10, 0, 100),
	})
	if got := len(u.Monitors()); got != 1 {
		t.Fatalf("expected 1 monitor after filtering, got %d", got)
	}
}
