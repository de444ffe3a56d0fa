package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

var (
	resizeFilter  filterOpts
	resizeAll     bool
	resizeIndices string
	resizeWidth   int
	resizeHeight  int
	resizeSize    string
	resizeCenter  bool
	resizeSortPos string
)

func init() {
	cmdWindows.AddCommand(cmdWindowsResize)
	resizeFilter.register(cmdWindowsResize)
	cmdWindowsResize.Flags().BoolVarP(&resizeAll, "all", "a", false, "Apply to all matching windows")
	cmdWindowsResize.Flags().StringVar(&resizeIndices, "index", "", "Window indices to resize (e.g. \"1,2,3\"), 1-based after sorting")
	cmdWindowsResize.Flags().IntVarP(&resizeWidth, "width", "W", 0, "Window width in pixels")
	cmdWindowsResize.Flags().IntVarP(&resizeHeight, "height", "H", 0, "Window height in pixels")
	cmdWindowsResize.Flags().StringVar(&resizeSize, "size", "", "Window size as WIDTHxHEIGHT (e.g. \"800x600\")")
	cmdWindowsResize.Flags().BoolVar(&resizeCenter, "center", false, "Center window on screen after resizing")
	cmdWindowsResize.Flags().StringVar(&resizeSortPos, "sort-position", "0|0", "Sort by position: X_ORDER|Y_ORDER, e.g. 1|-1")
	cmdWindowsResize.MarkFlagsMutuallyExclusive("size", "width")
	cmdWindowsResize.MarkFlagsMutuallyExclusive("size", "height")
}

var cmdWindowsResize = &cobra.Command{
	Use:   "resize",
	Short: "Resize matching windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := controller().Resize(cmd.Context(), app.ResizeParams{
			Filter:  resizeFilter.filter(),
			All:     resizeAll,
			Indices: resizeIndices,
			Width:   resizeWidth,
			Height:  resizeHeight,
			Size:    resizeSize,
			Center:  resizeCenter,
			SortPos: parsePositionSortFlag(resizeSortPos, inventory.PositionSort{}),
		})
		printWarning(res.Warning)
		for _, ev := range res.Events {
			if ev.Err == nil {
				fmt.Fprintf(os.Stdout, "Resized: %s (PID: %d) to %dx%d\n", ev.Window.Title, ev.Window.PID, ev.Size.Width, ev.Size.Height)
			} else {
				fmt.Fprintf(os.Stderr, "Failed to resize window %s (PID: %d): %v\n", ev.Window.Title, ev.Window.PID, ev.Err)
			}
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Successfully resized %d window(s)\n", res.Successes)
		return nil
	},
}
