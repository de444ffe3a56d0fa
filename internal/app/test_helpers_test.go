package app

import (
	"context"

	"procwin/internal/inventory"
	"procwin/internal/platform"
)

type fakeLister struct {
	processes []inventory.Process
	err       error
}

func (f *fakeLister) Snapshot(ctx context.Context) ([]inventory.Process, error) {
	return f.processes, f.err
}

// fakeProvider stubs the platform layer with per-method function fields
// and records every mutation it receives.
type fakeProvider struct {
	supported    *bool // nil means supported
	enumerate    func() ([]platform.Window, error)
	minimize     func(w platform.Window) error
	maximize     func(w platform.Window) error
	restore      func(w platform.Window) error
	move         func(w platform.Window, x, y int) error
	resize       func(w platform.Window, width, height int, center bool) error
	topMost      func(w platform.Window) (bool, error)
	setTopMost   func(w platform.Window, on bool) error
	setOpacity   func(w platform.Window, percent uint8) error
	mutations    []string
	mutatedPIDs  []int32
	movedPoints  []Point
	resizedSizes []Size
}

func (f *fakeProvider) Supported() bool {
	if f.supported != nil {
		return *f.supported
	}
	return true
}

func (f *fakeProvider) Enumerate() ([]platform.Window, error) {
	if f.enumerate != nil {
		return f.enumerate()
	}
	return nil, nil
}

func (f *fakeProvider) record(kind string, w platform.Window) {
	f.mutations = append(f.mutations, kind)
	f.mutatedPIDs = append(f.mutatedPIDs, w.PID)
}

func (f *fakeProvider) Minimize(w platform.Window) error {
	f.record("minimize", w)
	if f.minimize != nil {
		return f.minimize(w)
	}
	return nil
}

func (f *fakeProvider) Maximize(w platform.Window) error {
	f.record("maximize", w)
	if f.maximize != nil {
		return f.maximize(w)
	}
	return nil
}

func (f *fakeProvider) Restore(w platform.Window) error {
	f.record("restore", w)
	if f.restore != nil {
		return f.restore(w)
	}
	return nil
}

func (f *fakeProvider) Move(w platform.Window, x, y int) error {
	f.record("move", w)
	f.movedPoints = append(f.movedPoints, Point{X: x, Y: y})
	if f.move != nil {
		return f.move(w, x, y)
	}
	return nil
}

func (f *fakeProvider) Resize(w platform.Window, width, height int, center bool) error {
	f.record("resize", w)
	f.resizedSizes = append(f.resizedSizes, Size{Width: width, Height: height})
	if f.resize != nil {
		return f.resize(w, width, height, center)
	}
	return nil
}

func (f *fakeProvider) TopMost(w platform.Window) (bool, error) {
	if f.topMost != nil {
		return f.topMost(w)
	}
	return false, nil
}

func (f *fakeProvider) SetTopMost(w platform.Window, on bool) error {
	f.record("top", w)
	if f.setTopMost != nil {
		return f.setTopMost(w, on)
	}
	return nil
}

func (f *fakeProvider) SetOpacity(w platform.Window, percent uint8) error {
	f.record("opacity", w)
	if f.setOpacity != nil {
		return f.setOpacity(w, percent)
	}
	return nil
}

func boolPtr(v bool) *bool { return &v }

func newTestApp(processes []inventory.Process, windows []platform.Window) (*App, *fakeProvider) {
	provider := &fakeProvider{
		enumerate: func() ([]platform.Window, error) { return windows, nil },
	}
	app := New(Options{
		Lister:   &fakeLister{processes: processes},
		Provider: provider,
	})
	return app, provider
}
