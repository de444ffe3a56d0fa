package platform

import (
	"errors"
	"fmt"
)

// WindowID is a platform-neutral window identifier, wide enough to hold a
// Win32 HWND or an X11 window ID.
type WindowID uint64

// Rect describes a window's geometry in screen coordinates. Width and height
// may be zero for minimized or degenerate windows.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// String renders the geometry as WxH+X+Y.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Window contains metadata and geometry for one top-level window. A window
// belongs to exactly one PID; the owning process may have exited since
// enumeration.
type Window struct {
	ID     WindowID
	PID    int32
	Title  string
	Bounds Rect
}

// ErrUnsupported is returned by every mutation on platforms without a
// reachable window system.
var ErrUnsupported = errors.New("window operations are not supported on this platform")

// Provider abstracts window-system enumeration and state changes. One
// variant exists per OS family, selected by New at startup; all mutations
// are single synchronous native calls with no retries.
type Provider interface {
	// Supported reports whether a window system is reachable. When false,
	// Enumerate returns an empty list without error and callers surface the
	// condition as a one-time advisory, not a failure.
	Supported() bool

	// Enumerate lists all top-level, user-visible windows system-wide.
	Enumerate() ([]Window, error)

	Minimize(w Window) error
	Maximize(w Window) error
	Restore(w Window) error

	// Move repositions a window, keeping its current size.
	Move(w Window, x, y int) error
	// Resize changes a window's size, keeping its position, or centering it
	// on the primary screen when center is set.
	Resize(w Window, width, height int, center bool) error

	// TopMost reports whether the window is currently kept above others.
	TopMost(w Window) (bool, error)
	SetTopMost(w Window, on bool) error

	// SetOpacity sets the window opacity as a percentage, 0 (invisible) to
	// 100 (opaque). 100 also clears any previously applied opacity.
	SetOpacity(w Window, percent uint8) error
}

// Unsupported is the placeholder provider for platforms without a native
// window manager the tool can reach.
type Unsupported struct{}

var _ Provider = Unsupported{}

func (Unsupported) Supported() bool              { return false }
func (Unsupported) Enumerate() ([]Window, error) { return nil, nil }

func (Unsupported) Minimize(Window) error               { return ErrUnsupported }
func (Unsupported) Maximize(Window) error               { return ErrUnsupported }
func (Unsupported) Restore(Window) error                { return ErrUnsupported }
func (Unsupported) Move(Window, int, int) error         { return ErrUnsupported }
func (Unsupported) Resize(Window, int, int, bool) error { return ErrUnsupported }
func (Unsupported) TopMost(Window) (bool, error)        { return false, ErrUnsupported }
func (Unsupported) SetTopMost(Window, bool) error       { return ErrUnsupported }
func (Unsupported) SetOpacity(Window, uint8) error      { return ErrUnsupported }
