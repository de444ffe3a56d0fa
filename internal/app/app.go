package app

import (
	"context"

	"procwin/internal/inventory"
	"procwin/internal/platform"
	"procwin/internal/procs"
)

// Lister produces one process-table snapshot per call.
type Lister interface {
	Snapshot(ctx context.Context) ([]inventory.Process, error)
}

// Options configures the top-level controller.
type Options struct {
	// Lister overrides the process enumerator. Defaults to the live table.
	Lister Lister
	// Provider overrides the platform window provider. Defaults to the
	// native provider for this build.
	Provider platform.Provider
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	lister   Lister
	provider platform.Provider
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	a := &App{
		lister:   opts.Lister,
		provider: opts.Provider,
	}
	if a.lister == nil {
		a.lister = procs.SystemLister{}
	}
	if a.provider == nil {
		a.provider = platform.New()
	}
	return a
}
