package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

var (
	moveFilter  filterOpts
	moveAll     bool
	moveIndices string
	movePos     string
	moveLayout  string
	moveXStart  string
	moveYStart  string
	moveXStep   string
	moveYStep   string
	moveSortPos string
)

func init() {
	cmdWindows.AddCommand(cmdWindowsMove)
	moveFilter.register(cmdWindowsMove)
	cmdWindowsMove.Flags().BoolVarP(&moveAll, "all", "a", false, "Apply to all matching windows")
	cmdWindowsMove.Flags().StringVar(&moveIndices, "index", "", "Window indices to move (e.g. \"1,2,3\"), 1-based after sorting")
	cmdWindowsMove.Flags().StringVar(&movePos, "position", "", "Target position for every window (e.g. \"100,100\")")
	cmdWindowsMove.Flags().StringVar(&moveLayout, "layout", "", "Per-window positions (e.g. \"100,100,150,120,200,140\")")
	cmdWindowsMove.Flags().StringVar(&moveXStart, "x-start", "", "Starting X position for the grid walk")
	cmdWindowsMove.Flags().StringVar(&moveYStart, "y-start", "", "Starting Y position for the grid walk")
	cmdWindowsMove.Flags().StringVar(&moveXStep, "x-step", "", "X step between windows (default 100)")
	cmdWindowsMove.Flags().StringVar(&moveYStep, "y-step", "", "Y step between windows (default 100)")
	cmdWindowsMove.Flags().StringVar(&moveSortPos, "sort-position", "1|1", "Sort by position: X_ORDER|Y_ORDER, e.g. 1|-1")
}

var cmdWindowsMove = &cobra.Command{
	Use:   "move",
	Short: "Move matching windows to new positions",
	Long:  "Positions windows by a single coordinate, an explicit per-window layout, or a grid walk from a starting point.",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := controller().Move(cmd.Context(), app.MoveParams{
			Filter:  moveFilter.filter(),
			All:     moveAll,
			Indices: moveIndices,
			Placement: app.PlacementSpec{
				Position: movePos,
				Layout:   moveLayout,
				XStart:   moveXStart,
				YStart:   moveYStart,
				XStep:    moveXStep,
				YStep:    moveYStep,
			},
			SortPos: parsePositionSortFlag(moveSortPos, inventory.DefaultPositionSort()),
		})
		printWarning(res.Warning)
		for _, ev := range res.Events {
			if ev.Err == nil {
				fmt.Fprintf(os.Stdout, "Position set: %s (PID: %d) to position %d,%d\n", ev.Window.Title, ev.Window.PID, ev.Pos.X, ev.Pos.Y)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to set position for window %s (PID: %d): %v\n", ev.Window.Title, ev.Window.PID, ev.Err)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Successfully positioned %d window(s)\n", res.Successes)
		return nil
	},
}
