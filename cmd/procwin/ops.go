package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procwin/internal/app"
)

func init() {
	cmdWindows.AddCommand(
		newOpCommand(app.OpMinimize),
		newOpCommand(app.OpMaximize),
		newOpCommand(app.OpRestore),
	)
}

// newOpCommand builds one state-transition subcommand; minimize, maximize
// and restore differ only in the verb.
func newOpCommand(op app.Op) *cobra.Command {
	var (
		filter filterOpts
		all    bool
	)
	cmd := &cobra.Command{
		Use:   op.String(),
		Short: fmt.Sprintf("%s matching windows", op.Capitalized()),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := controller().Manipulate(cmd.Context(), app.ManipulateParams{
				Filter: filter.filter(),
				Op:     op,
				All:    all,
			})
			printWarning(res.Warning)
			reportOpEvents(op, res.Events)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Successfully %s %d window(s)\n", op.PastTense(), res.Successes)
			return nil
		},
	}
	filter.register(cmd)
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Apply to all matching windows")
	return cmd
}

func reportOpEvents(op app.Op, events []app.OpEvent) {
	for _, ev := range events {
		if ev.Err == nil {
			fmt.Fprintf(os.Stdout, "%s: %s (PID: %d)\n", op.Capitalized(), ev.Window.Title, ev.Window.PID)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to %s window %s (PID: %d): %v\n", op, ev.Window.Title, ev.Window.PID, ev.Err)
		}
	}
}
