package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "procwin [command]",
	Short: "procwin: process and window inspector",
	Long:  `procwin lists running processes together with their top-level windows and can minimize, maximize, restore, move, resize, pin, and fade those windows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcessList(cmd)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
