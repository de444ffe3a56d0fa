package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
)

var (
	topFilter filterOpts
	topAll    bool
	topToggle bool
	topOff    bool
)

func init() {
	cmdWindows.AddCommand(cmdWindowsTop)
	topFilter.register(cmdWindowsTop)
	cmdWindowsTop.Flags().BoolVarP(&topAll, "all", "a", false, "Apply to all matching windows")
	cmdWindowsTop.Flags().BoolVar(&topToggle, "toggle", false, "Toggle the current always-on-top state")
	cmdWindowsTop.Flags().BoolVar(&topOff, "off", false, "Return windows to the normal layer")
	cmdWindowsTop.MarkFlagsMutuallyExclusive("toggle", "off")
}

var cmdWindowsTop = &cobra.Command{
	Use:   "top",
	Short: "Keep matching windows above normal windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := app.TopOn
		switch {
		case topOff:
			mode = app.TopOff
		case topToggle:
			mode = app.TopToggle
		}

		res, err := controller().Top(cmd.Context(), app.TopParams{
			Filter: topFilter.filter(),
			Mode:   mode,
			All:    topAll,
		})
		printWarning(res.Warning)
		action := "set"
		if mode == app.TopToggle {
			action = "toggled"
		}
		for _, ev := range res.Events {
			if ev.Err == nil {
				state := "normal"
				if ev.NewState {
					state = "always on top"
				}
				fmt.Fprintf(os.Stdout, "%s: %s (PID: %d) - %s\n", action, ev.Window.Title, ev.Window.PID, state)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to %s window %s (PID: %d): %v\n", mode.Verb(), ev.Window.Title, ev.Window.PID, ev.Err)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Successfully modified %d window(s)\n", res.Successes)
		return nil
	},
}
