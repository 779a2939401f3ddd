package commands

import (
	"testing"

	"github.com/snaptile/snaptile/internal/geometry"
	"github.com/snaptile/snaptile/internal/layout"
	"github.com/snaptile/snaptile/internal/region"
)

// testRegion is a single 1000x1000 monitor with a 50px bottom panel.
func testRegion() *region.UsableRegion {
	u := region.New()
	u.SetMonitors([]geometry.Rect{geometry.NewRect(0, 0, 1000, 1000)})
	u.SetStruts([]geometry.StrutPartial{geometry.NewStrut(0, 0, 0, 50)})
	return u
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	cmd := Command{
		Name: "noop",
		Run: func(Context) (geometry.Rect, bool, error) {
			return geometry.Rect{}, false, nil
		},
	}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(cmd); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if err := r.Register(Command{Name: "broken"}); err == nil {
		t.Fatal("command without a run function should be rejected")
	}
	if _, ok := r.Lookup("noop"); !ok {
		t.Fatal("Lookup should find registered command")
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Fatal("Lookup should miss unregistered command")
	}
}

func TestRegistryRun_UnknownName(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Run("nope", Context{}); err == nil {
		t.Fatal("unknown command should be an error")
	}
}

func TestCyclePresets_StepsAndWraps(t *testing.T) {
	u := testRegion()
	run := CyclePresets([]layout.Preset{
		{X: 0, Y: 0, W: 0.5, H: 1},
		{X: 0, Y: 0, W: 0.25, H: 1},
	})

	// Usable area is (0,0,1000,950); presets resolve against it.
	half := geometry.NewRect(0, 0, 500, 950)
	quarter := geometry.NewRect(0, 0, 250, 950)

	// Unmatched window snaps to the first preset.
	got, ok, err := run(Context{Region: u, Window: geometry.NewRect(700, 700, 100, 100)})
	if err != nil || !ok {
		t.Fatalf("run: ok=%v err=%v", ok, err)
	}
	if got != half {
		t.Fatalf("first press = %+v, want %+v", got, half)
	}

	// A window already on the first preset advances to the second.
	got, ok, err = run(Context{Region: u, Window: half})
	if err != nil || !ok {
		t.Fatalf("run: ok=%v err=%v", ok, err)
	}
	if got != quarter {
		t.Fatalf("second press = %+v, want %+v", got, quarter)
	}

	// And wraps back around.
	got, _, _ = run(Context{Region: u, Window: quarter})
	if got != half {
		t.Fatalf("third press = %+v, want %+v", got, half)
	}
}

func TestCyclePresets_NoMonitorsIsNoop(t *testing.T) {
	run := CyclePresets([]layout.Preset{{W: 1, H: 1}})
	_, ok, err := run(Context{Region: region.New(), Window: geometry.NewRect(0, 0, 10, 10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("no monitors should decline, not place")
	}
}

func TestCyclePresets_EmptyPresetListIsNoop(t *testing.T) {
	run := CyclePresets(nil)
	_, ok, err := run(Context{Region: testRegion(), Window: geometry.NewRect(0, 0, 10, 10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("empty preset list should decline")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(3, layout.GravityLayout{}, map[string][]layout.Preset{
		"zz-custom": {{W: 1, H: 1}},
		"aa-custom": {{W: 0.5, H: 0.5}},
	})
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	names := r.Names()
	want := []string{
		"top-left", "top", "top-right",
		"left", "center", "right",
		"bottom-left", "bottom", "bottom-right",
		"maximize", "move-to-center",
		"aa-custom", "zz-custom",
	}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDefaultRegistry_GravityCommandsAnchor(t *testing.T) {
	r, err := NewDefaultRegistry(2, layout.GravityLayout{}, nil)
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	u := testRegion()
	window := geometry.NewRect(400, 400, 100, 100)

	res, ok, err := r.Run("right", Context{Region: u, Window: window})
	if err != nil || !ok {
		t.Fatalf("run right: ok=%v err=%v", ok, err)
	}
	if res.Gravity != geometry.GravityRight {
		t.Fatalf("gravity = %v, want right", res.Gravity)
	}
	// First press: right half of the usable area.
	if res.Rect != geometry.NewRect(500, 0, 500, 950) {
		t.Fatalf("right rect = %+v", res.Rect)
	}
}

func TestMaximizeFillsUsable(t *testing.T) {
	r, err := NewDefaultRegistry(3, layout.GravityLayout{}, nil)
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	res, ok, err := r.Run("maximize", Context{
		Region: testRegion(),
		Window: geometry.NewRect(100, 100, 200, 200),
	})
	if err != nil || !ok {
		t.Fatalf("maximize: ok=%v err=%v", ok, err)
	}
	if res.Rect != geometry.NewRect(0, 0, 1000, 950) {
		t.Fatalf("maximize rect = %+v", res.Rect)
	}
}

func TestMoveToCenter(t *testing.T) {
	r, err := NewDefaultRegistry(3, layout.GravityLayout{}, nil)
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	res, ok, err := r.Run("move-to-center", Context{
		Region: testRegion(),
		Window: geometry.NewRect(0, 0, 200, 100),
	})
	if err != nil || !ok {
		t.Fatalf("move-to-center: ok=%v err=%v", ok, err)
	}
	// Usable area is (0,0,1000,950): centered 200x100 sits at (400,425).
	if res.Rect != geometry.NewRect(400, 425, 200, 100) {
		t.Fatalf("centered rect = %+v", res.Rect)
	}

	// Size is preserved; only position changes.
	if res.Rect.Width != 200 || res.Rect.Height != 100 {
		t.Fatalf("size changed: %+v", res.Rect)
	}
}
