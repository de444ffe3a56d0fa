package app

import (
	"context"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// WindowRow is one window in the window-centric listing, annotated with
// its owning process name.
type WindowRow struct {
	platform.Window
	Name string
}

// WindowsParams defines the window listing: filter plus display ordering.
type WindowsParams struct {
	Filter  inventory.Filter
	SortPID inventory.SortOrder
	SortPos inventory.PositionSort
}

// WindowsResult carries the sorted window rows plus any detection
// advisory.
type WindowsResult struct {
	Rows    []WindowRow
	Warning string
}

// Windows lists individual windows rather than processes. A process owning
// three windows yields three rows here and one entry in List.
func (a *App) Windows(ctx context.Context, params WindowsParams) (WindowsResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return WindowsResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return WindowsResult{}, err
	}

	matched := resolveWindows(snap, params.Filter)
	inventory.SortWindows(matched, params.SortPID, params.SortPos)

	names := ownerNames(snap.Entries)
	rows := make([]WindowRow, 0, len(matched))
	for _, w := range matched {
		name := names[w.PID]
		if name == "" {
			name = "Unknown"
		}
		rows = append(rows, WindowRow{Window: w, Name: name})
	}
	return WindowsResult{Rows: rows, Warning: snap.Warning}, nil
}
