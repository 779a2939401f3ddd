package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/snaptile/snaptile/internal/geometry"
)

// DockStruts collects the space reservations of every dock window: the
// _NET_WM_STRUT_PARTIAL hint where available, falling back to _NET_WM_STRUT
// (which has no partial ranges and therefore spans the full edge).
func (c *Connection) DockStruts() ([]geometry.StrutPartial, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	var struts []geometry.StrutPartial
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			struts = append(struts, geometry.StrutPartial{
				Left:   int(sp.Left),
				Right:  int(sp.Right),
				Top:    int(sp.Top),
				Bottom: int(sp.Bottom),

				LeftStartY:   int(sp.LeftStartY),
				LeftEndY:     int(sp.LeftEndY),
				RightStartY:  int(sp.RightStartY),
				RightEndY:    int(sp.RightEndY),
				TopStartX:    int(sp.TopStartX),
				TopEndX:      int(sp.TopEndX),
				BottomStartX: int(sp.BottomStartX),
				BottomEndX:   int(sp.BottomEndX),
			})
			continue
		}

		// Some docks only set _NET_WM_STRUT.
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			struts = append(struts, geometry.NewStrut(
				int(s.Left), int(s.Right), int(s.Top), int(s.Bottom)))
		}
	}

	return struts, nil
}
