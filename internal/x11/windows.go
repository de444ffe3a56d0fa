package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Window is one entry of the EWMH client list with resolved metadata.
type Window struct {
	ID     xproto.Window
	PID    int32
	Title  string
	X      int
	Y      int
	Width  int
	Height int
}

// ListWindows returns the window manager's client list. Windows without a
// resolvable _NET_WM_PID or with a blank title are skipped — they cannot be
// joined to a process and are not user-addressable by filters.
func (c *Connection) ListWindows() ([]Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("get client list: %w", err)
	}

	windows := make([]Window, 0, len(clients))
	for _, id := range clients {
		title := c.windowTitle(id)
		if title == "" {
			continue
		}
		pid, err := ewmh.WmPidGet(c.XUtil, id)
		if err != nil || pid == 0 {
			continue
		}
		x, y, w, h, ok := c.windowGeometry(id)
		if !ok {
			continue
		}
		windows = append(windows, Window{
			ID:     id,
			PID:    int32(pid),
			Title:  title,
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
		})
	}
	return windows, nil
}

func (c *Connection) windowTitle(id xproto.Window) string {
	if title, err := ewmh.WmNameGet(c.XUtil, id); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	// Older clients only set the ICCCM name.
	if title, err := icccm.WmNameGet(c.XUtil, id); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

func (c *Connection) windowGeometry(id xproto.Window) (x, y, width, height int, ok bool) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(id)).Reply()
	if err != nil {
		return 0, 0, 0, 0, false
	}
	// Window coordinates are relative to the WM frame; translate to root.
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), id, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, false
	}
	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), true
}
