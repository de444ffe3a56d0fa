package app

import (
	"context"
	"fmt"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// ManipulateParams defines one state-transition batch: which windows, what
// transition, and whether multiple matches are intentional.
type ManipulateParams struct {
	Filter inventory.Filter
	Op     Op
	All    bool
}

// Manipulate runs a minimize/maximize/restore batch: resolve candidates,
// validate cardinality, then apply best-effort. Once the first mutation is
// issued the batch runs to completion; per-target failures are reported in
// Events, not raised.
func (a *App) Manipulate(ctx context.Context, params ManipulateParams) (BatchResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return BatchResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return BatchResult{}, err
	}

	candidates := resolveWindows(snap, params.Filter)
	if err := checkCardinality(candidates, params.All, params.Op.String()); err != nil {
		return BatchResult{Warning: snap.Warning}, err
	}

	res := BatchResult{Matched: len(candidates), Warning: snap.Warning}
	for _, w := range candidates {
		opErr := a.applyOp(params.Op, w)
		res.Events = append(res.Events, OpEvent{Window: w, Err: opErr})
		if opErr == nil {
			res.Successes++
		}
	}
	if res.Successes == 0 {
		return res, ErrNoneModified
	}
	return res, nil
}

// checkCardinality enforces the pre-mutation contract: an empty candidate
// set is an error, and multiple candidates require explicit --all consent.
func checkCardinality(candidates []platform.Window, all bool, verb string) error {
	if len(candidates) == 0 {
		return ErrNoWindows
	}
	if len(candidates) > 1 && !all {
		return fmt.Errorf("multiple windows found (%d). Use --all to %s all matching windows", len(candidates), verb)
	}
	return nil
}

func (a *App) applyOp(op Op, w platform.Window) error {
	switch op {
	case OpMinimize:
		return a.provider.Minimize(w)
	case OpMaximize:
		return a.provider.Maximize(w)
	case OpRestore:
		return a.provider.Restore(w)
	}
	return fmt.Errorf("unknown operation %d", op)
}
