// Package commands maps command names to placement computations. The
// registry is an explicit object owned by the daemon's composition root;
// there is no package-level mutable state.
package commands

import (
	"fmt"
	"sort"

	"github.com/snaptile/snaptile/internal/geometry"
	"github.com/snaptile/snaptile/internal/layout"
	"github.com/snaptile/snaptile/internal/region"
)

// Context carries everything a command needs to compute a placement: the
// usable-region engine and the reference window's current absolute geometry.
type Context struct {
	Region *region.UsableRegion
	Window geometry.Rect
	// Tolerance for preset cycling; zero means layout.DefaultCycleTolerance.
	Tolerance float64
}

// Command computes a target geometry for the reference window. ok is false
// when the command has nothing to do (no monitor configured); that is a
// normal outcome, not an error.
type Command struct {
	Name string
	Help string
	// Gravity is handed back with the computed rectangle so the caller can
	// anchor the window-manager request at the matching edge.
	Gravity geometry.Gravity
	Run     func(ctx Context) (geometry.Rect, bool, error)
}

// Result is a computed placement: the target rectangle in absolute top-left
// form plus the gravity the command anchors at.
type Result struct {
	Rect    geometry.Rect
	Gravity geometry.Gravity
}

// Registry holds commands in registration order.
type Registry struct {
	order  []string
	byName map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command. Duplicate names are a programming error.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || cmd.Run == nil {
		return fmt.Errorf("command must have a name and a run function")
	}
	if _, exists := r.byName[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	r.byName[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the named command.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Run executes the named command. Unknown names are an error; a command
// declining to act (ok=false) is not.
func (r *Registry) Run(name string, ctx Context) (Result, bool, error) {
	cmd, ok := r.byName[name]
	if !ok {
		return Result{}, false, fmt.Errorf("unknown command %q", name)
	}
	rect, ok, err := cmd.Run(ctx)
	if err != nil || !ok {
		return Result{}, false, err
	}
	return Result{Rect: rect, Gravity: cmd.Gravity}, true, nil
}

// CyclePresets returns a command body that steps the window through the given
// preset list. Presets resolve against the owning monitor's usable rectangle,
// so panels are avoided by construction; the result is additionally pushed
// out of reserved space as a safety net for struts crossing monitor edges.
func CyclePresets(presets []layout.Preset) func(ctx Context) (geometry.Rect, bool, error) {
	return func(ctx Context) (geometry.Rect, bool, error) {
		monitor, ok := ctx.Region.FindMonitor(ctx.Window)
		if !ok {
			return geometry.Rect{}, false, nil
		}
		usable, ok := ctx.Region.UsableFor(monitor)
		if !ok {
			return geometry.Rect{}, false, nil
		}
		resolved := layout.ResolveAll(presets, usable)
		idx := layout.NextPreset(ctx.Window, resolved, usable, ctx.Tolerance)
		if idx < 0 {
			return geometry.Rect{}, false, nil
		}
		target := resolved[idx]
		if moved, ok := ctx.Region.MoveToUsable(target); ok {
			target = moved
		}
		return target, true, nil
	}
}

func maximize(ctx Context) (geometry.Rect, bool, error) {
	monitor, ok := ctx.Region.FindMonitor(ctx.Window)
	if !ok {
		return geometry.Rect{}, false, nil
	}
	usable, ok := ctx.Region.UsableFor(monitor)
	if !ok {
		return geometry.Rect{}, false, nil
	}
	return usable, true, nil
}

// moveToCenter centers the window in the usable rectangle without resizing,
// clipping only if the window is larger than the usable area.
func moveToCenter(ctx Context) (geometry.Rect, bool, error) {
	monitor, ok := ctx.Region.FindMonitor(ctx.Window)
	if !ok {
		return geometry.Rect{}, false, nil
	}
	usable, ok := ctx.Region.UsableFor(monitor)
	if !ok {
		return geometry.Rect{}, false, nil
	}
	cx, cy := usable.Center()
	target := geometry.Rect{
		X: cx, Y: cy,
		Width: ctx.Window.Width, Height: ctx.Window.Height,
	}.FromGravity(geometry.GravityCenter)
	return target.MovedInto(usable, true), true, nil
}

// gravityOrder fixes the listing order of the generated cycling commands.
var gravityOrder = []string{
	"top-left", "top", "top-right",
	"left", "center", "right",
	"bottom-left", "bottom", "bottom-right",
}

// NewDefaultRegistry builds the standard command set: one cycling command per
// gravity from the WinSplit preset table, maximize, move-to-center, and any
// custom preset lists from config (registered in name order for stable
// listings).
func NewDefaultRegistry(columns int, gl layout.GravityLayout, custom map[string][]layout.Preset) (*Registry, error) {
	r := NewRegistry()

	positions := layout.WinsplitPositions(columns, gl)
	for _, name := range gravityOrder {
		presets, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("preset table missing gravity %q", name)
		}
		gravity, err := geometry.ParseGravity(name)
		if err != nil {
			return nil, err
		}
		if err := r.Register(Command{
			Name:    name,
			Help:    fmt.Sprintf("Cycle the active window through %s presets", name),
			Gravity: gravity,
			Run:     CyclePresets(presets),
		}); err != nil {
			return nil, err
		}
	}

	if err := r.Register(Command{
		Name:    "maximize",
		Help:    "Fill the usable area of the active monitor",
		Gravity: geometry.GravityCenter,
		Run:     maximize,
	}); err != nil {
		return nil, err
	}
	if err := r.Register(Command{
		Name:    "move-to-center",
		Help:    "Center the active window without resizing",
		Gravity: geometry.GravityCenter,
		Run:     moveToCenter,
	}); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Register(Command{
			Name: name,
			Help: "Cycle the active window through custom presets",
			Run:  CyclePresets(custom[name]),
		}); err != nil {
			return nil, fmt.Errorf("custom command %q: %w", name, err)
		}
	}

	return r, nil
}
