package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/snaptile/snaptile/internal/geometry"
)

// ActiveWindow returns the currently focused window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return win, nil
}

// WindowGeometry returns the window's absolute frame geometry: the client
// area translated to root coordinates, expanded by the window-manager frame
// extents so the rectangle covers the decorations the user actually sees.
func (c *Connection) WindowGeometry(windowID xproto.Window) (geometry.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	left, right, top, bottom := c.FrameExtents(windowID)
	return geometry.NewRect(
		int(translate.DstX)-left,
		int(translate.DstY)-top,
		int(geom.Width)+left+right,
		int(geom.Height)+top+bottom,
	), nil
}

// FrameExtents returns the window decoration sizes, zeros when unavailable.
func (c *Connection) FrameExtents(windowID xproto.Window) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return 0, 0, 0, 0
	}
	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom)
}

// MoveResize places a window so its frame occupies rect, interpreting the
// rectangle's origin per the given gravity. Maximized state is cleared first
// or the window manager would ignore the request.
func (c *Connection) MoveResize(windowID xproto.Window, rect geometry.Rect, gravity geometry.Gravity) error {
	// Not fatal when it fails; some windows don't speak the state protocol.
	_ = c.unmaximizeWindow(windowID)

	// rect covers the frame; the moveresize request addresses the client
	// area, so shrink by the frame extents.
	left, right, top, bottom := c.FrameExtents(windowID)
	client := geometry.NewRect(
		rect.X+left, rect.Y+top,
		rect.Width-left-right, rect.Height-top-bottom)

	// _NET_MOVERESIZE_WINDOW interprets x/y as the gravity point, so convert
	// from top-left form before sending.
	if err := c.moveresizeMessage(windowID, client.ToGravity(gravity), gravity); err != nil {
		// Fallback to direct window manipulation for non-EWMH setups.
		xwindow.New(c.XUtil, windowID).MoveResize(
			client.X, client.Y, client.Width, client.Height)
	}
	return nil
}

// moveresizeMessage sends _NET_MOVERESIZE_WINDOW directly. We build the
// client message manually so the gravity bits of the flags word are under
// our control; the xgbutil helper hardcodes bit-forget gravity.
func (c *Connection) moveresizeMessage(windowID xproto.Window, rect geometry.Rect, gravity geometry.Gravity) error {
	atomReply, err := xproto.InternAtom(c.XUtil.Conn(), false,
		uint16(len("_NET_MOVERESIZE_WINDOW")), "_NET_MOVERESIZE_WINDOW").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_MOVERESIZE_WINDOW: %w", err)
	}

	const sourceIndication = 2 // pager/direct action
	// Flags: gravity in the low byte, then presence bits for x/y/w/h, then
	// the source indication.
	flags := uint32(XGravity(gravity)) |
		1<<8 | 1<<9 | 1<<10 | 1<<11 |
		sourceIndication<<12

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: windowID,
		Type:   atomReply.Atom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			flags,
			uint32(rect.X), uint32(rect.Y),
			uint32(rect.Width), uint32(rect.Height),
		}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// unmaximizeWindow removes maximized state from a window.
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		if state == "_NET_WM_STATE_MAXIMIZED_HORZ" || state == "_NET_WM_STATE_MAXIMIZED_VERT" {
			ewmh.WmStateReq(c.XUtil, windowID, 0, state)
		}
	}
	return nil
}

// IsNormalWindow reports whether a window is a regular application window
// that placement commands should act on.
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine the type, assume it's normal.
		return true
	}
	return normalWindowType(types)
}

// normalWindowType classifies a _NET_WM_WINDOW_TYPE list. Only the types
// placement must never touch are excluded; unknown or vendor types count as
// normal, the same stance taken when the property is unreadable.
func normalWindowType(types []string) bool {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return true
}
