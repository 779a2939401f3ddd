package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/snaptile/snaptile/internal/geometry"
)

// Monitor is one active output with its absolute geometry.
type Monitor struct {
	ID   int
	Name string
	Rect geometry.Rect
}

// GetMonitors retrieves all active monitors using XRandR.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs.
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:   i,
			Name: outputName,
			Rect: geometry.NewRect(
				int(crtcInfo.X), int(crtcInfo.Y),
				int(crtcInfo.Width), int(crtcInfo.Height)),
		})
	}

	return monitors, nil
}

// MonitorRects extracts the plain rectangles for the usable-region engine.
func MonitorRects(monitors []Monitor) []geometry.Rect {
	rects := make([]geometry.Rect, len(monitors))
	for i, m := range monitors {
		rects[i] = m.Rect
	}
	return rects
}
