package app

import (
	"context"

	"procwin/internal/inventory"
)

// ListParams defines the read-path filter.
type ListParams struct {
	Filter inventory.Filter
}

// ListResult carries the filtered inventory plus any detection advisory.
// An empty Entries slice is a valid result; the CLI decides how to report
// it.
type ListResult struct {
	Entries []inventory.Entry
	Warning string
}

// List produces the joined, filtered process inventory.
func (a *App) List(ctx context.Context, params ListParams) (ListResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return ListResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Entries: params.Filter.Apply(snap.Entries),
		Warning: snap.Warning,
	}, nil
}
