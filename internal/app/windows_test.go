package app

import (
	"context"
	"testing"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

func TestWindowsOneRowPerWindow(t *testing.T) {
	processes, windows := editorFixture()
	app, _ := newTestApp(processes, windows)

	res, err := app.Windows(context.Background(), WindowsParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("expected one row per window, got %d", len(res.Rows))
	}
	if res.Rows[1].Name != "browser" || res.Rows[2].Name != "browser" {
		t.Fatalf("rows should carry the owner name: %+v", res.Rows)
	}
}

func TestWindowsOrphanOwnerIsUnknown(t *testing.T) {
	windows := []platform.Window{{ID: 9, PID: 999, Title: "Ghost"}}
	app, _ := newTestApp(nil, windows)

	res, err := app.Windows(context.Background(), WindowsParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0].Name != "Unknown" {
		t.Fatalf("orphan window should list with owner Unknown: %+v", res.Rows)
	}
}

func TestWindowsSortByPID(t *testing.T) {
	processes := []inventory.Process{{PID: 2, Name: "b"}, {PID: 1, Name: "a"}}
	windows := []platform.Window{
		{ID: 1, PID: 2, Title: "second"},
		{ID: 2, PID: 1, Title: "first"},
	}
	app, _ := newTestApp(processes, windows)

	res, err := app.Windows(context.Background(), WindowsParams{
		SortPID: inventory.SortAscending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Rows[0].PID != 1 || res.Rows[1].PID != 2 {
		t.Fatalf("expected PID ascending order: %+v", res.Rows)
	}
}

func TestWindowsSortByPosition(t *testing.T) {
	windows := []platform.Window{
		{ID: 1, PID: 10, Title: "right", Bounds: platform.Rect{X: 500, Y: 0}},
		{ID: 2, PID: 10, Title: "left", Bounds: platform.Rect{X: 0, Y: 0}},
	}
	app, _ := newTestApp([]inventory.Process{{PID: 10, Name: "term"}}, windows)

	res, err := app.Windows(context.Background(), WindowsParams{
		SortPos: inventory.DefaultPositionSort(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Rows[0].Title != "left" {
		t.Fatalf("expected position ascending order: %+v", res.Rows)
	}
}
