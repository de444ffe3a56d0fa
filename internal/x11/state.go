package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

const (
	stateMaximizedVert = "_NET_WM_STATE_MAXIMIZED_VERT"
	stateMaximizedHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateAbove         = "_NET_WM_STATE_ABOVE"
	opacityProp        = "_NET_WM_WINDOW_OPACITY"
)

// Minimize iconifies a window via WM_CHANGE_STATE per ICCCM.
func (c *Connection) Minimize(id xproto.Window) error {
	atom, err := xprop.Atm(c.XUtil, "WM_CHANGE_STATE")
	if err != nil {
		return err
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: id,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// Maximize requests both maximized states from the window manager.
func (c *Connection) Maximize(id xproto.Window) error {
	return ewmh.WmStateReqExtra(c.XUtil, id, ewmh.StateAdd, stateMaximizedVert, stateMaximizedHorz, 2)
}

// Restore deiconifies the window and drops the maximized states, mirroring
// SW_RESTORE semantics.
func (c *Connection) Restore(id xproto.Window) error {
	if err := xproto.MapWindowChecked(c.XUtil.Conn(), id).Check(); err != nil {
		return fmt.Errorf("map window: %w", err)
	}
	return ewmh.WmStateReqExtra(c.XUtil, id, ewmh.StateRemove, stateMaximizedVert, stateMaximizedHorz, 2)
}

// MoveResize places a window at the given root-relative geometry.
func (c *Connection) MoveResize(id xproto.Window, x, y, width, height int) error {
	return ewmh.MoveresizeWindow(c.XUtil, id, x, y, width, height)
}

// Above reports whether the window carries _NET_WM_STATE_ABOVE.
func (c *Connection) Above(id xproto.Window) (bool, error) {
	states, err := ewmh.WmStateGet(c.XUtil, id)
	if err != nil {
		return false, err
	}
	for _, state := range states {
		if state == stateAbove {
			return true, nil
		}
	}
	return false, nil
}

// SetAbove adds or removes the always-on-top state.
func (c *Connection) SetAbove(id xproto.Window, on bool) error {
	action := ewmh.StateAdd
	if !on {
		action = ewmh.StateRemove
	}
	return ewmh.WmStateReq(c.XUtil, id, action, stateAbove)
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY as a fraction of full opacity.
// percent >= 100 removes the property so compositors treat the window as
// fully opaque again.
func (c *Connection) SetOpacity(id xproto.Window, percent uint8) error {
	if percent >= 100 {
		atom, err := xprop.Atm(c.XUtil, opacityProp)
		if err != nil {
			return err
		}
		return xproto.DeletePropertyChecked(c.XUtil.Conn(), id, atom).Check()
	}
	value := uint(uint64(percent) * 0xFFFFFFFF / 100)
	return xprop.ChangeProp32(c.XUtil, id, opacityProp, "CARDINAL", value)
}
