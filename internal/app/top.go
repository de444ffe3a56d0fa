package app

import (
	"context"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// TopMode selects the always-on-top transition.
type TopMode int

const (
	// TopOn pins windows above normal windows.
	TopOn TopMode = iota
	// TopOff returns windows to the normal layer.
	TopOff
	// TopToggle reads the current state per window and inverts it.
	TopToggle
)

// Verb returns the failure-line phrasing for the mode.
func (m TopMode) Verb() string {
	switch m {
	case TopOff:
		return "unset always on top"
	case TopToggle:
		return "toggle always on top"
	}
	return "set always on top"
}

// TopParams defines one always-on-top batch. The strict cardinality rule
// applies: multiple matches require All.
type TopParams struct {
	Filter inventory.Filter
	Mode   TopMode
	All    bool
}

// TopEvent is one per-target outcome. NewState is the state the window
// ended in, meaningful only when Err is nil.
type TopEvent struct {
	Window   platform.Window
	NewState bool
	Err      error
}

// TopResult aggregates an always-on-top batch.
type TopResult struct {
	Events    []TopEvent
	Matched   int
	Successes int
	Warning   string
}

// Top sets, clears, or toggles the always-on-top state of matching
// windows. Toggle queries each window independently, so a mixed batch
// ends with every window flipped relative to its own prior state.
func (a *App) Top(ctx context.Context, params TopParams) (TopResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return TopResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return TopResult{}, err
	}

	candidates := resolveWindows(snap, params.Filter)
	if err := checkCardinality(candidates, params.All, "modify"); err != nil {
		return TopResult{Warning: snap.Warning}, err
	}

	res := TopResult{Matched: len(candidates), Warning: snap.Warning}
	for _, w := range candidates {
		state, opErr := a.applyTop(params.Mode, w)
		res.Events = append(res.Events, TopEvent{Window: w, NewState: state, Err: opErr})
		if opErr == nil {
			res.Successes++
		}
	}
	if res.Successes == 0 {
		return res, ErrNoneModified
	}
	return res, nil
}

func (a *App) applyTop(mode TopMode, w platform.Window) (bool, error) {
	target := true
	switch mode {
	case TopOff:
		target = false
	case TopToggle:
		current, err := a.provider.TopMost(w)
		if err != nil {
			return false, err
		}
		target = !current
	}
	if err := a.provider.SetTopMost(w, target); err != nil {
		return false, err
	}
	return target, nil
}
