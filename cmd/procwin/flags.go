package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"procwin/internal/app"
	"procwin/internal/config"
	"procwin/internal/inventory"
	"procwin/internal/output"
)

// controllerAPI is the surface of app.App the commands call; tests swap
// the factory for a stub.
type controllerAPI interface {
	List(context.Context, app.ListParams) (app.ListResult, error)
	Windows(context.Context, app.WindowsParams) (app.WindowsResult, error)
	Manipulate(context.Context, app.ManipulateParams) (app.BatchResult, error)
	Move(context.Context, app.MoveParams) (app.MoveResult, error)
	Resize(context.Context, app.ResizeParams) (app.ResizeResult, error)
	Top(context.Context, app.TopParams) (app.TopResult, error)
	Opacity(context.Context, app.OpacityParams) (app.OpacityResult, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{})
}

func controller() controllerAPI {
	return controllerFactory()
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// filterOpts carries the shared selector flags. Every command gets its
// own copy so flag state never leaks across subcommands.
type filterOpts struct {
	pid   int32
	name  string
	title string
}

func (f *filterOpts) register(cmd *cobra.Command) {
	cmd.Flags().Int32VarP(&f.pid, "pid", "p", 0, "Filter by process ID")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Filter by process name (contains)")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Filter by window title (contains)")
}

func (f *filterOpts) filter() inventory.Filter {
	return inventory.Filter{PID: f.pid, Name: f.name, Title: f.title}
}

// formatOpts carries the --format flag plus config/env fallbacks.
type formatOpts struct {
	format string
}

func (f *formatOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: table, json, yaml, csv, simple, detailed")
}

// resolve returns the effective format and renderer. Flag wins over env
// wins over file; the built-in defaults cover the rest.
func (f *formatOpts) resolve() (output.Format, output.Renderer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", output.Renderer{}, err
	}
	name := cfg.Format
	if f.format != "" {
		name = f.format
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return "", output.Renderer{}, err
	}
	renderer := output.Renderer{
		Out:           os.Stdout,
		TruncateWidth: cfg.TruncateWidth,
		Verbose:       verbose,
	}
	return format, renderer, nil
}

// spinnerHandle wraps the progress spinner so callers can stop a nil
// handle when no spinner was started.
type spinnerHandle struct {
	s *spinner.Spinner
}

func (h *spinnerHandle) stop() {
	if h != nil && h.s != nil {
		h.s.Stop()
	}
}

// spinnerFor shows progress on stderr while a snapshot is taken, table
// format only, so it never pollutes parseable stdout output.
func spinnerFor(format output.Format, suffix string) *spinnerHandle {
	if format != output.FormatTable {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	s.Start()
	return &spinnerHandle{s: s}
}

func printWarning(warning string) {
	if warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
}

func parsePositionSortFlag(value string, fallback inventory.PositionSort) inventory.PositionSort {
	if value == "" {
		return fallback
	}
	sort, err := inventory.ParsePositionSort(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid position sort format %q, using default\n", value)
		return fallback
	}
	return sort
}
