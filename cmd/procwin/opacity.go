package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
)

var (
	opacityFilter filterOpts
	opacityAll    bool
	opacityLevel  uint8
	opacityReset  bool
)

func init() {
	cmdWindows.AddCommand(cmdWindowsOpacity)
	opacityFilter.register(cmdWindowsOpacity)
	cmdWindowsOpacity.Flags().BoolVarP(&opacityAll, "all", "a", false, "Apply to all matching windows")
	cmdWindowsOpacity.Flags().Uint8VarP(&opacityLevel, "level", "l", 100, "Opacity level (0-100%, where 100 is fully opaque)")
	cmdWindowsOpacity.Flags().BoolVar(&opacityReset, "reset", false, "Restore full opacity")
	cmdWindowsOpacity.MarkFlagsMutuallyExclusive("level", "reset")
}

var cmdWindowsOpacity = &cobra.Command{
	Use:   "opacity",
	Short: "Set the opacity of matching windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := controller().Opacity(cmd.Context(), app.OpacityParams{
			Filter: opacityFilter.filter(),
			Level:  opacityLevel,
			Reset:  opacityReset,
			All:    opacityAll,
		})
		printWarning(res.Warning)
		action := "set"
		if opacityReset {
			action = "reset"
		}
		for _, ev := range res.Events {
			if ev.Err == nil {
				fmt.Fprintf(os.Stdout, "%s: %s (PID: %d) to %d%% opacity\n", action, ev.Window.Title, ev.Window.PID, ev.Level)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to set opacity for window %s (PID: %d): %v\n", ev.Window.Title, ev.Window.PID, ev.Err)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Successfully modified %d window(s)\n", res.Successes)
		return nil
	},
}
