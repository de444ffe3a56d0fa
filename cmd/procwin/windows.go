package main

import (
	"github.com/spf13/cobra"
)

var cmdWindows = &cobra.Command{
	Use:   "windows",
	Short: "Inspect and manipulate top-level windows",
}

func init() {
	rootCmd.AddCommand(cmdWindows)
}
