package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

// Size is a window dimension in pixels, always positive.
type Size struct {
	Width  int
	Height int
}

// ParseSize parses "WIDTHxHEIGHT", e.g. "800x600".
func ParseSize(s string) (Size, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("invalid size format %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Size{}, fmt.Errorf("invalid width %q", parts[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Size{}, fmt.Errorf("invalid height %q", parts[1])
	}
	if w <= 0 || h <= 0 {
		return Size{}, errors.New("width and height must be positive values")
	}
	return Size{Width: w, Height: h}, nil
}

// ResizeParams defines one resize batch. Size takes the combined form;
// Width/Height take the split form; exactly one form must be present.
type ResizeParams struct {
	Filter  inventory.Filter
	All     bool
	Indices string
	Width   int
	Height  int
	Size    string
	Center  bool
	SortPos inventory.PositionSort
}

// ResizeEvent is one per-target resize outcome.
type ResizeEvent struct {
	Window platform.Window
	Size   Size
	Err    error
}

// ResizeResult aggregates a resize batch.
type ResizeResult struct {
	Events    []ResizeEvent
	Matched   int
	Successes int
	Warning   string
}

func (p ResizeParams) size() (Size, error) {
	if p.Size != "" {
		return ParseSize(p.Size)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return Size{}, errors.New("width and height must be positive values")
	}
	return Size{Width: p.Width, Height: p.Height}, nil
}

// Resize changes window dimensions, keeping position unless Center is
// set. Selection follows the same rule as Move: indices win, then --all,
// then first-only.
func (a *App) Resize(ctx context.Context, params ResizeParams) (ResizeResult, error) {
	if err := params.Filter.Validate(); err != nil {
		return ResizeResult{}, err
	}
	size, err := params.size()
	if err != nil {
		return ResizeResult{}, err
	}
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return ResizeResult{}, err
	}

	candidates := resolveWindows(snap, params.Filter)
	if len(candidates) == 0 {
		return ResizeResult{Warning: snap.Warning}, ErrNoWindows
	}
	inventory.SortWindows(candidates, inventory.SortNone, params.SortPos)

	indices := ParseIndices(params.Indices, len(candidates))
	targets := selectTargets(candidates, indices, params.All)

	res := ResizeResult{Matched: len(candidates), Warning: snap.Warning}
	for _, t := range targets {
		opErr := a.provider.Resize(t.Window, size.Width, size.Height, params.Center)
		res.Events = append(res.Events, ResizeEvent{Window: t.Window, Size: size, Err: opErr})
		if opErr == nil {
			res.Successes++
		}
	}
	if res.Successes == 0 {
		return res, ErrNoneModified
	}
	return res, nil
}
