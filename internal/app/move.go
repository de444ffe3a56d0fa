package app

import (
	"context"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// MoveParams defines one placement batch. Candidates are ordered by
// SortPos before indices apply, so "--index 1" means the leftmost window
// under the default ordering.
type MoveParams struct {
	Filter    inventory.Filter
	All       bool
	Indices   string
	Placement PlacementSpec
	SortPos   inventory.PositionSort
}

// MoveEvent is one per-target placement outcome.
type MoveEvent struct {
	Window platform.Window
	Pos    Point
	Err    error
}

// MoveResult aggregates a placement batch.
type MoveResult struct {
	Events    []MoveEvent
	Matched   int
	Successes int
	Warning   string
}

// Move repositions matching windows. Selection follows the placement
// rule: explicit indices win, --all takes every candidate, otherwise only
// the first sorted candidate moves.
func (a *App) Move(ctx context.Context, params MoveParams) (MoveResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return MoveResult{}, err
	}
	if err := params.Placement.Validate(); err != nil {
		return MoveResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return MoveResult{}, err
	}

	candidates := resolveWindows(snap, params.Filter)
	if len(candidates) == 0 {
		return MoveResult{Warning: snap.Warning}, ErrNoWindows
	}
	inventory.SortWindows(candidates, inventory.SortNone, params.SortPos)

	positions, err := params.Placement.Positions(len(candidates))
	if err != nil {
		return MoveResult{Warning: snap.Warning}, err
	}

	indices := ParseIndices(params.Indices, len(candidates))
	targets := selectTargets(candidates, indices, params.All)

	res := MoveResult{Matched: len(candidates), Warning: snap.Warning}
	for _, t := range targets {
		pos := positions[t.Index-1]
		opErr := a.provider.Move(t.Window, pos.X, pos.Y)
		res.Events = append(res.Events, MoveEvent{Window: t.Window, Pos: pos, Err: opErr})
		if opErr == nil {
			res.Successes++
		}
	}
	if res.Successes == 0 {
		return res, ErrNoneModified
	}
	return res, nil
}
