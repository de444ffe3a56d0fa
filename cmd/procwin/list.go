package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
)

var (
	listFilter    filterOpts
	listFormat    formatOpts
	listHasWindow bool
	listNoWindow  bool
)

func init() {
	listFilter.register(rootCmd)
	listFormat.register(rootCmd)
	rootCmd.Flags().BoolVar(&listHasWindow, "has-window", false, "Only processes that own at least one window")
	rootCmd.Flags().BoolVar(&listNoWindow, "no-window", false, "Only processes without windows")
	rootCmd.MarkFlagsMutuallyExclusive("has-window", "no-window")
}

func runProcessList(cmd *cobra.Command) error {
	format, renderer, err := listFormat.resolve()
	if err != nil {
		return err
	}

	filter := listFilter.filter()
	filter.HasWindow = listHasWindow
	filter.NoWindow = listNoWindow

	spin := spinnerFor(format, " Scanning processes...")
	res, err := controller().List(cmd.Context(), app.ListParams{Filter: filter})
	spin.stop()
	if err != nil {
		return err
	}
	printWarning(res.Warning)

	if len(res.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "No matching processes found")
		os.Exit(1)
	}
	return renderer.Processes(format, res.Entries)
}
