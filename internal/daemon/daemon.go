// Package daemon is the composition root: it owns the single UsableRegion,
// the command registry, and the X11 connection, and wires hotkeys, IPC, and
// D-Bus to placement commands.
package daemon

import (
	"fmt"
	"log"
	"sync"

	"github.com/snaptile/snaptile/internal/commands"
	"github.com/snaptile/snaptile/internal/config"
	"github.com/snaptile/snaptile/internal/dbusapi"
	"github.com/snaptile/snaptile/internal/geometry"
	"github.com/snaptile/snaptile/internal/hotkeys"
	"github.com/snaptile/snaptile/internal/ipc"
	"github.com/snaptile/snaptile/internal/layout"
	"github.com/snaptile/snaptile/internal/region"
	"github.com/snaptile/snaptile/internal/x11"
)

// Daemon holds the live placement state. IPC and D-Bus handlers run on their
// own goroutines, so the mutable state behind mu is accessed under lock; the
// geometry core itself is pure and needs none.
type Daemon struct {
	conn *x11.Connection

	mu       sync.Mutex
	cfg      *config.Config
	region   *region.UsableRegion
	registry *commands.Registry
	monitors []x11.Monitor
	struts   []geometry.StrutPartial

	ipcServer *ipc.Server
	dbusSvc   *dbusapi.Service
}

// New connects to the X server and assembles the daemon from config.
func New(cfg *config.Config) (*Daemon, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	d := &Daemon{
		conn:   conn,
		region: region.New(),
	}
	if err := d.applyConfig(cfg); err != nil {
		conn.Close()
		return nil, err
	}
	if err := d.refreshTopology(); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

// applyConfig rebuilds the command registry from config. Caller must not
// hold mu.
func (d *Daemon) applyConfig(cfg *config.Config) error {
	gl := layout.GravityLayout{
		MarginX: cfg.Margin.XPercent / 100,
		MarginY: cfg.Margin.YPercent / 100,
	}
	custom := make(map[string][]layout.Preset, len(cfg.CustomCommands))
	for name, geoms := range cfg.CustomCommands {
		presets := make([]layout.Preset, len(geoms))
		for i, g := range geoms {
			presets[i] = layout.Preset{X: g.X, Y: g.Y, W: g.Width, H: g.Height}
		}
		custom[name] = presets
	}

	registry, err := commands.NewDefaultRegistry(cfg.ColumnCount, gl, custom)
	if err != nil {
		return fmt.Errorf("failed to build command registry: %w", err)
	}

	d.mu.Lock()
	d.cfg = cfg
	d.registry = registry
	d.mu.Unlock()
	return nil
}

// refreshTopology re-reads monitors and struts from the X server and feeds
// them to the usable-region engine. Called at startup, on reload, and before
// each placement command so hotplug and panel changes are picked up without
// event plumbing.
func (d *Daemon) refreshTopology() error {
	monitors, err := d.conn.GetMonitors()
	if err != nil {
		return fmt.Errorf("failed to enumerate monitors: %w", err)
	}
	struts, err := d.conn.DockStruts()
	if err != nil {
		// A missing client list just means no panels to account for.
		log.Printf("Strut detection failed: %v", err)
		struts = nil
	}

	d.mu.Lock()
	d.monitors = monitors
	d.struts = struts
	d.region.SetMonitors(x11.MonitorRects(monitors))
	d.region.SetStruts(struts)
	d.mu.Unlock()
	return nil
}

// Run starts the IPC server, the D-Bus service, grabs hotkeys, and blocks in
// the X event loop.
func (d *Daemon) Run() error {
	ipcServer, err := ipc.NewServer(d)
	if err != nil {
		return err
	}
	if err := ipcServer.Start(); err != nil {
		return err
	}
	d.ipcServer = ipcServer

	d.mu.Lock()
	cfg := d.cfg
	d.mu.Unlock()

	if cfg.DBus.Enabled {
		svc, err := dbusapi.Start(d)
		if err != nil {
			// D-Bus is optional; hotkeys and IPC still work without it.
			log.Printf("D-Bus service unavailable: %v", err)
		} else {
			d.dbusSvc = svc
		}
	}

	handler := hotkeys.NewHandler(d.conn, d)
	if err := handler.RegisterAll(cfg.Keys); err != nil {
		d.Stop()
		return err
	}

	log.Printf("Daemon running: %d key bindings, %d commands",
		len(cfg.Keys), len(d.CommandNames()))

	d.conn.EventLoop()
	return nil
}

// Stop tears down the IPC socket, the bus name, and the X connection.
func (d *Daemon) Stop() {
	if d.ipcServer != nil {
		d.ipcServer.Stop()
	}
	if d.dbusSvc != nil {
		d.dbusSvc.Close()
	}
	d.conn.Close()
}

// RunCommand executes a named placement command against the active window.
// A command that has nothing to do (no monitor, no active window worth
// moving) is a silent no-op.
func (d *Daemon) RunCommand(name string) error {
	if err := d.refreshTopology(); err != nil {
		return err
	}

	win, err := d.conn.ActiveWindow()
	if err != nil {
		log.Printf("No active window: %v", err)
		return nil
	}
	if !d.conn.IsNormalWindow(win) {
		return nil
	}

	winRect, err := d.conn.WindowGeometry(win)
	if err != nil {
		return err
	}

	d.mu.Lock()
	ctx := commands.Context{
		Region:    d.region,
		Window:    winRect,
		Tolerance: d.cfg.CycleTolerance,
	}
	result, ok, err := d.registry.Run(name, ctx)
	d.mu.Unlock()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	log.Printf("Command %q: %+v -> %+v (gravity %s)",
		name, winRect, result.Rect, result.Gravity)
	return d.conn.MoveResize(win, result.Rect, result.Gravity)
}

// PlaceActive moves the active window to an explicit geometry, given either
// as size or opposite-corner form per axis. With relative set, coordinates
// are taken relative to the owning monitor's usable area.
func (d *Daemon) PlaceActive(spec geometry.RectSpec, relative bool) error {
	rect, err := spec.Build()
	if err != nil {
		return err
	}
	if err := d.refreshTopology(); err != nil {
		return err
	}

	win, err := d.conn.ActiveWindow()
	if err != nil {
		return err
	}
	winRect, err := d.conn.WindowGeometry(win)
	if err != nil {
		return err
	}

	d.mu.Lock()
	if relative {
		if monitor, ok := d.region.FindMonitor(winRect); ok {
			if usable, ok := d.region.UsableFor(monitor); ok {
				rect = rect.FromRelative(usable)
			}
		}
	}
	if moved, ok := d.region.MoveToUsable(rect); ok {
		rect = moved
	}
	d.mu.Unlock()

	return d.conn.MoveResize(win, rect, geometry.GravityTopLeft)
}

// CommandNames lists the registered commands in order.
func (d *Daemon) CommandNames() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registry.Names()
}

// Monitors reports monitor geometry plus the usable area after struts.
func (d *Daemon) Monitors() []ipc.MonitorInfo {
	d.mu.Lock()
	defer d.mu.Unlock()

	infos := make([]ipc.MonitorInfo, 0, len(d.monitors))
	for _, m := range d.monitors {
		info := ipc.MonitorInfo{
			ID: m.ID, Name: m.Name,
			X: m.Rect.X, Y: m.Rect.Y,
			Width: m.Rect.Width, Height: m.Rect.Height,
		}
		if usable, ok := d.region.UsableFor(m.Rect); ok {
			info.UsableX = usable.X
			info.UsableY = usable.Y
			info.UsableWidth = usable.Width
			info.UsableHeight = usable.Height
		}
		infos = append(infos, info)
	}
	return infos
}

// StrutCount reports how many panel reservations are currently tracked.
func (d *Daemon) StrutCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.struts)
}

// Reload re-reads config and topology. New key bindings take effect on the
// next daemon restart; the X grabs stay as they were.
func (d *Daemon) Reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := d.applyConfig(cfg); err != nil {
		return err
	}
	if err := d.refreshTopology(); err != nil {
		return err
	}
	log.Println("Config and topology reloaded")
	return nil
}
