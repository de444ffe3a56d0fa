package app

import (
	"context"
	"fmt"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// Snap is one joined inventory snapshot. Every invocation takes a fresh
// one; nothing persists across runs.
type Snap struct {
	Entries []inventory.Entry
	Windows []platform.Window
	// Warning carries the one-time advisory for degraded window
	// detection; empty when the window list is trustworthy.
	Warning string
}

// Snapshot enumerates processes and windows and joins them. Window-side
// problems degrade to process-only data with an advisory rather than
// failing the pass; only the process enumeration itself can error.
func (a *App) Snapshot(ctx context.Context) (Snap, error) {
	processes, err := a.lister.Snapshot(ctx)
	if err != nil {
		return Snap{}, err
	}

	var snap Snap
	windows, err := a.provider.Enumerate()
	switch {
	case !a.provider.Supported():
		snap.Warning = "window detection is not supported on this platform"
		windows = nil
	case err != nil:
		snap.Warning = fmt.Sprintf("window enumeration failed: %v; continuing with process-only data", err)
		windows = nil
	}

	snap.Windows = windows
	snap.Entries = inventory.Join(processes, windows)
	return snap, nil
}
