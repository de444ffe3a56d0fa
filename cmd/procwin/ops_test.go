package main

import (
	"context"
	"errors"
	"testing"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

type stubController struct {
	manipulateFunc func(ctx context.Context, params app.ManipulateParams) (app.BatchResult, error)
}

func (s *stubController) List(ctx context.Context, params app.ListParams) (app.ListResult, error) {
	panic("List not implemented")
}

func (s *stubController) Windows(ctx context.Context, params app.WindowsParams) (app.WindowsResult, error) {
	panic("Windows not implemented")
}

func (s *stubController) Manipulate(ctx context.Context, params app.ManipulateParams) (app.BatchResult, error) {
	if s.manipulateFunc != nil {
		return s.manipulateFunc(ctx, params)
	}
	return app.BatchResult{}, errors.New("manipulate not implemented")
}

func (s *stubController) Move(ctx context.Context, params app.MoveParams) (app.MoveResult, error) {
	panic("Move not implemented")
}

func (s *stubController) Resize(ctx context.Context, params app.ResizeParams) (app.ResizeResult, error) {
	panic("Resize not implemented")
}

func (s *stubController) Top(ctx context.Context, params app.TopParams) (app.TopResult, error) {
	panic("Top not implemented")
}

func (s *stubController) Opacity(ctx context.Context, params app.OpacityParams) (app.OpacityResult, error) {
	panic("Opacity not implemented")
}

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func TestOpCommandPassesParams(t *testing.T) {
	var got app.ManipulateParams
	withController(t, &stubController{
		manipulateFunc: func(ctx context.Context, params app.ManipulateParams) (app.BatchResult, error) {
			got = params
			return app.BatchResult{Matched: 1, Successes: 1}, nil
		},
	})

	cmd := newOpCommand(app.OpMinimize)
	cmd.SetArgs([]string{"--name", "editor", "--all"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Op != app.OpMinimize || !got.All {
		t.Fatalf("unexpected params: %+v", got)
	}
	if got.Filter.Name != "editor" {
		t.Fatalf("unexpected filter: %+v", got.Filter)
	}
}

func TestOpCommandPropagatesBatchError(t *testing.T) {
	withController(t, &stubController{
		manipulateFunc: func(ctx context.Context, params app.ManipulateParams) (app.BatchResult, error) {
			return app.BatchResult{}, app.ErrNoWindows
		},
	})

	cmd := newOpCommand(app.OpRestore)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); !errors.Is(err, app.ErrNoWindows) {
		t.Fatalf("expected ErrNoWindows, got %v", err)
	}
}

func TestParsePositionSortFlagFallback(t *testing.T) {
	fallback := inventory.DefaultPositionSort()
	if got := parsePositionSortFlag("", fallback); got != fallback {
		t.Fatalf("empty value should keep the fallback, got %+v", got)
	}
	if got := parsePositionSortFlag("bogus", fallback); got != fallback {
		t.Fatalf("invalid value should keep the fallback, got %+v", got)
	}
	if got := parsePositionSortFlag("1|-1", fallback); got.X != inventory.SortAscending || got.Y != inventory.SortDescending {
		t.Fatalf("unexpected parse result: %+v", got)
	}
}
