package app

import (
	"context"
	"errors"
	"testing"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

func TestOpacitySetsLevel(t *testing.T) {
	processes, windows := editorFixture()
	app, provider := newTestApp(processes, windows)
	var levels []uint8
	provider.setOpacity = func(_ platform.Window, percent uint8) error {
		levels = append(levels, percent)
		return nil
	}

	res, err := app.Opacity(context.Background(), OpacityParams{
		Filter: inventory.Filter{Name: "editor"},
		Level:  70,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Successes != 1 || len(levels) != 1 || levels[0] != 70 {
		t.Fatalf("unexpected result: %+v levels=%v", res, levels)
	}
}

func TestOpacityResetOverridesLevel(t *testing.T) {
	processes, windows := editorFixture()
	app, provider := newTestApp(processes, windows)
	var levels []uint8
	provider.setOpacity = func(_ platform.Window, percent uint8) error {
		levels = append(levels, percent)
		return nil
	}

	_, err := app.Opacity(context.Background(), OpacityParams{
		Filter: inventory.Filter{Name: "editor"},
		Level:  30,
		Reset:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(levels) != 1 || levels[0] != 100 {
		t.Fatalf("reset should force full opacity: %v", levels)
	}
}

func TestOpacityRejectsOutOfRange(t *testing.T) {
	app := New(Options{
		Lister:   &fakeLister{err: errors.New("should not be called")},
		Provider: &fakeProvider{},
	})
	_, err := app.Opacity(context.Background(), OpacityParams{Level: 150})
	if err == nil || err.Error() != "opacity level must be 0-100, got 150" {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestOpacityStrictCardinality(t *testing.T) {
	processes, windows := editorFixture()
	app, provider := newTestApp(processes, windows)

	_, err := app.Opacity(context.Background(), OpacityParams{
		Filter: inventory.Filter{Name: "browser"},
		Level:  50,
	})
	if err == nil || err.Error() != "multiple windows found (2). Use --all to modify all matching windows" {
		t.Fatalf("expected multi-match error, got %v", err)
	}
	if len(provider.mutations) != 0 {
		t.Fatalf("no mutation should have been issued, got %v", provider.mutations)
	}
}

func TestOpacityNoCandidates(t *testing.T) {
	app, _ := newTestApp([]inventory.Process{{PID: 1, Name: "idle"}}, nil)
	_, err := app.Opacity(context.Background(), OpacityParams{Level: 50})
	if !errors.Is(err, ErrNoWindows) {
		t.Fatalf("expected ErrNoWindows, got %v", err)
	}
}
