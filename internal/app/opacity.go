package app

import (
	"context"
	"fmt"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// OpacityParams defines one opacity batch. Level is a percentage where
// 100 means fully opaque; Reset overrides Level and restores 100.
type OpacityParams struct {
	Filter inventory.Filter
	Level  uint8
	Reset  bool
	All    bool
}

// OpacityEvent is one per-target outcome.
type OpacityEvent struct {
	Window platform.Window
	Level  uint8
	Err    error
}

// OpacityResult aggregates an opacity batch.
type OpacityResult struct {
	Events    []OpacityEvent
	Matched   int
	Successes int
	Warning   string
}

// Opacity sets the opacity level of matching windows. The strict
// cardinality rule applies: multiple matches require All.
func (a *App) Opacity(ctx context.Context, params OpacityParams) (OpacityResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return OpacityResult{}, err
	}
	level := params.Level
	if params.Reset {
		level = 100
	}
	if level > 100 {
		return OpacityResult{}, fmt.Errorf("opacity level must be 0-100, got %d", level)
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return OpacityResult{}, err
	}

	candidates := resolveWindows(snap, params.Filter)
	if err := checkCardinality(candidates, params.All, "modify"); err != nil {
		return OpacityResult{Warning: snap.Warning}, err
	}

	res := OpacityResult{Matched: len(candidates), Warning: snap.Warning}
	for _, w := range candidates {
		opErr := a.provider.SetOpacity(w, level)
		res.Events = append(res.Events, OpacityEvent{Window: w, Level: level, Err: opErr})
		if opErr == nil {
			res.Successes++
		}
	}
	if res.Successes == 0 {
		return res, ErrNoneModified
	}
	return res, nil
}
