package app

import (
	"context"
	"errors"
	"testing"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

func TestResizeWithCombinedSize(t *testing.T) {
	processes, windows := terminalFixture()
	app, provider := newTestApp(processes, windows)

	res, err := app.Resize(context.Background(), ResizeParams{
		All:  true,
		Size: "800x600",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Successes != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	for _, s := range provider.resizedSizes {
		if s != (Size{800, 600}) {
			t.Fatalf("unexpected size: %v", s)
		}
	}
}

func TestResizeWithSplitDimensions(t *testing.T) {
	processes, windows := terminalFixture()
	app, provider := newTestApp(processes, windows)

	res, err := app.Resize(context.Background(), ResizeParams{
		Filter: inventory.Filter{Title: "left"},
		Width:  1024,
		Height: 768,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Successes != 1 || provider.resizedSizes[0] != (Size{1024, 768}) {
		t.Fatalf("unexpected result: %+v sizes=%v", res, provider.resizedSizes)
	}
}

func TestResizeFirstOnlyWithoutAll(t *testing.T) {
	processes, windows := terminalFixture()
	app, provider := newTestApp(processes, windows)

	res, err := app.Resize(context.Background(), ResizeParams{
		Size: "640x480",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Matched != 3 || res.Successes != 1 || len(provider.resizedSizes) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	// No position sort requested, so the first enumerated window wins.
	if res.Events[0].Window.Title != "right" {
		t.Fatalf("expected first enumerated window, got %+v", res.Events[0].Window)
	}
}

func TestResizeCenterPassedThrough(t *testing.T) {
	processes, windows := terminalFixture()
	app, provider := newTestApp(processes, windows)
	var sawCenter bool
	provider.resize = func(_ platform.Window, _, _ int, center bool) error {
		sawCenter = center
		return nil
	}

	_, err := app.Resize(context.Background(), ResizeParams{
		Filter: inventory.Filter{Title: "left"},
		Size:   "800x600",
		Center: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawCenter {
		t.Fatal("center flag should reach the provider")
	}
}

func TestResizeRejectsMissingDimensions(t *testing.T) {
	app := New(Options{
		Lister:   &fakeLister{err: errors.New("should not be called")},
		Provider: &fakeProvider{},
	})
	_, err := app.Resize(context.Background(), ResizeParams{})
	if err == nil || err.Error() != "width and height must be positive values" {
		t.Fatalf("expected dimension validation error, got %v", err)
	}
}

func TestResizeNoCandidates(t *testing.T) {
	app, _ := newTestApp([]inventory.Process{{PID: 1, Name: "idle"}}, nil)
	_, err := app.Resize(context.Background(), ResizeParams{Size: "800x600"})
	if !errors.Is(err, ErrNoWindows) {
		t.Fatalf("expected ErrNoWindows, got %v", err)
	}
}
