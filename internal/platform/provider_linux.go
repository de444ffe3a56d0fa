//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"procwin/internal/x11"
)

type x11Provider struct {
	conn *x11.Connection
}

var _ Provider = (*x11Provider)(nil)

// New returns the X11 provider, or the placeholder when no X display is
// reachable (headless host, bare Wayland session).
func New() Provider {
	conn, err := x11.Connect()
	if err != nil {
		return Unsupported{}
	}
	return &x11Provider{conn: conn}
}

func (p *x11Provider) Supported() bool { return true }

func (p *x11Provider) Enumerate() ([]Window, error) {
	listed, err := p.conn.ListWindows()
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(listed))
	for _, w := range listed {
		windows = append(windows, Window{
			ID:    WindowID(w.ID),
			PID:   w.PID,
			Title: w.Title,
			Bounds: Rect{
				X:      w.X,
				Y:      w.Y,
				Width:  w.Width,
				Height: w.Height,
			},
		})
	}
	return windows, nil
}

func (p *x11Provider) Minimize(w Window) error {
	return p.conn.Minimize(xproto.Window(w.ID))
}

func (p *x11Provider) Maximize(w Window) error {
	return p.conn.Maximize(xproto.Window(w.ID))
}

func (p *x11Provider) Restore(w Window) error {
	return p.conn.Restore(xproto.Window(w.ID))
}

func (p *x11Provider) Move(w Window, x, y int) error {
	return p.conn.MoveResize(xproto.Window(w.ID), x, y, w.Bounds.Width, w.Bounds.Height)
}

func (p *x11Provider) Resize(w Window, width, height int, center bool) error {
	x, y := w.Bounds.X, w.Bounds.Y
	if center {
		screen := p.conn.XUtil.Screen()
		x = (int(screen.WidthInPixels) - width) / 2
		y = (int(screen.HeightInPixels) - height) / 2
	}
	return p.conn.MoveResize(xproto.Window(w.ID), x, y, width, height)
}

func (p *x11Provider) TopMost(w Window) (bool, error) {
	return p.conn.Above(xproto.Window(w.ID))
}

func (p *x11Provider) SetTopMost(w Window, on bool) error {
	return p.conn.SetAbove(xproto.Window(w.ID), on)
}

func (p *x11Provider) SetOpacity(w Window, percent uint8) error {
	if percent > 100 {
		return fmt.Errorf("opacity %d%% out of range", percent)
	}
	return p.conn.SetOpacity(xproto.Window(w.ID), percent)
}
