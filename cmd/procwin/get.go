package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
	"procwin/internal/inventory"
)

var (
	getFilter  filterOpts
	getFormat  formatOpts
	getSortPID string
	getSortPos string
)

func init() {
	cmdWindows.AddCommand(cmdWindowsGet)
	getFilter.register(cmdWindowsGet)
	getFormat.register(cmdWindowsGet)
	cmdWindowsGet.Flags().StringVar(&getSortPID, "sort-pid", "0", "Sort by PID: 1 ascending, -1 descending, 0 none")
	cmdWindowsGet.Flags().StringVar(&getSortPos, "sort-position", "", "Sort by position: X_ORDER|Y_ORDER, e.g. 1|-1")
}

var cmdWindowsGet = &cobra.Command{
	Use:   "get",
	Short: "List windows with their owning processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, renderer, err := getFormat.resolve()
		if err != nil {
			return err
		}
		sortPID, err := inventory.ParseSortOrder(getSortPID)
		if err != nil {
			return err
		}
		sortPos := parsePositionSortFlag(getSortPos, inventory.PositionSort{})

		spin := spinnerFor(format, " Scanning windows...")
		res, err := controller().Windows(cmd.Context(), app.WindowsParams{
			Filter:  getFilter.filter(),
			SortPID: sortPID,
			SortPos: sortPos,
		})
		spin.stop()
		if err != nil {
			return err
		}
		printWarning(res.Warning)

		if len(res.Rows) == 0 {
			fmt.Fprintln(os.Stderr, "No matching windows found")
			os.Exit(1)
		}
		return renderer.Windows(format, res.Rows)
	},
}
