//go:build windows

package platform

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procEnumWindows                = user32.NewProc("EnumWindows")
	procIsWindow                   = user32.NewProc("IsWindow")
	procIsWindowVisible            = user32.NewProc("IsWindowVisible")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId   = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procShowWindow                 = user32.NewProc("ShowWindow")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procGetSystemMetrics           = user32.NewProc("GetSystemMetrics")
)

const (
	swMaximize = 3
	swMinimize = 6
	swRestore  = 9

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	gwlExStyle  = -20
	wsExTopMost = 0x00000008
	wsExLayered = 0x00080000

	lwaAlpha = 0x00000002

	smCxScreen = 0
	smCyScreen = 1
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winProvider struct{}

var _ Provider = winProvider{}

// New returns the Win32 window provider.
func New() Provider {
	return winProvider{}
}

func (winProvider) Supported() bool { return true }

// enumAccum receives windows during an EnumWindows pass. The callback is
// created once because syscall.NewCallback allocations are never released;
// the engine is single-threaded per invocation so a package slot is safe.
var enumAccum *[]Window

var enumWindowsCallback = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	const continueEnum = 1

	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return continueEnum
	}
	title := windowTitle(hwnd)
	if strings.TrimSpace(title) == "" {
		return continueEnum
	}
	pid := windowPID(hwnd)
	if pid == 0 {
		return continueEnum
	}
	bounds, ok := windowBounds(hwnd)
	if !ok {
		return continueEnum
	}

	*enumAccum = append(*enumAccum, Window{
		ID:     WindowID(hwnd),
		PID:    pid,
		Title:  title,
		Bounds: bounds,
	})
	return continueEnum
})

func (winProvider) Enumerate() ([]Window, error) {
	var out []Window
	enumAccum = &out
	defer func() { enumAccum = nil }()

	if ret, _, err := procEnumWindows.Call(enumWindowsCallback, 0); ret == 0 {
		return out, fmt.Errorf("EnumWindows: %w", err)
	}
	return out, nil
}

func (winProvider) Minimize(w Window) error { return showWindow(w, swMinimize) }
func (winProvider) Maximize(w Window) error { return showWindow(w, swMaximize) }
func (winProvider) Restore(w Window) error  { return showWindow(w, swRestore) }

func (winProvider) Move(w Window, x, y int) error {
	if err := ensureWindow(w); err != nil {
		return err
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.ID), 0,
		uintptr(x), uintptr(y), 0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (winProvider) Resize(w Window, width, height int, center bool) error {
	if err := ensureWindow(w); err != nil {
		return err
	}
	flags := uintptr(swpNoZOrder | swpNoActivate)
	x, y := 0, 0
	if center {
		screenW, _, _ := procGetSystemMetrics.Call(smCxScreen)
		screenH, _, _ := procGetSystemMetrics.Call(smCyScreen)
		x = (int(screenW) - width) / 2
		y = (int(screenH) - height) / 2
	} else {
		flags |= swpNoMove
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.ID), 0,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		flags,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (winProvider) TopMost(w Window) (bool, error) {
	if err := ensureWindow(w); err != nil {
		return false, err
	}
	style, _, _ := procGetWindowLongW.Call(uintptr(w.ID), uintptr(uint32(gwlExStyle)))
	return style&wsExTopMost != 0, nil
}

func (winProvider) SetTopMost(w Window, on bool) error {
	if err := ensureWindow(w); err != nil {
		return err
	}
	insertAfter := ^uintptr(0) // HWND_TOPMOST (-1)
	if !on {
		insertAfter = ^uintptr(1) // HWND_NOTOPMOST (-2)
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.ID), insertAfter,
		0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (winProvider) SetOpacity(w Window, percent uint8) error {
	if err := ensureWindow(w); err != nil {
		return err
	}
	style, _, _ := procGetWindowLongW.Call(uintptr(w.ID), uintptr(uint32(gwlExStyle)))

	if percent >= 100 {
		// Fully opaque: drop the layered style so the window composites
		// normally again.
		if style&wsExLayered != 0 {
			procSetWindowLongW.Call(uintptr(w.ID), uintptr(uint32(gwlExStyle)), style&^uintptr(wsExLayered))
		}
		return nil
	}

	if style&wsExLayered == 0 {
		if ret, _, err := procSetWindowLongW.Call(uintptr(w.ID), uintptr(uint32(gwlExStyle)), style|wsExLayered); ret == 0 {
			return fmt.Errorf("SetWindowLong: %w", err)
		}
	}
	alpha := uintptr(percent) * 255 / 100
	if ret, _, err := procSetLayeredWindowAttributes.Call(uintptr(w.ID), 0, alpha, lwaAlpha); ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", err)
	}
	return nil
}

func showWindow(w Window, cmd int) error {
	if err := ensureWindow(w); err != nil {
		return err
	}
	// ShowWindow's return value reports prior visibility, not failure; the
	// transition request itself is idempotent.
	procShowWindow.Call(uintptr(w.ID), uintptr(cmd))
	return nil
}

// ensureWindow catches the common race where a window closed between
// enumeration and apply.
func ensureWindow(w Window) error {
	if ret, _, _ := procIsWindow.Call(uintptr(w.ID)); ret == 0 {
		return fmt.Errorf("window %q (pid %d) no longer exists", w.Title, w.PID)
	}
	return nil
}

func windowTitle(hwnd uintptr) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowPID(hwnd uintptr) int32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return int32(pid)
}

func windowBounds(hwnd uintptr) (Rect, bool) {
	var r winRect
	if ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r))); ret == 0 {
		return Rect{}, false
	}
	return Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, true
}
