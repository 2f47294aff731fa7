package main

import (
	"github.com/spf13/cobra"

	"github.com/juruen/sketchset/shell"
)

var padStudent string

var padCmd = &cobra.Command{
	Use:   "pad [command...]",
	Short: "Open the drawing pad for a student",
	Long: `Starts an interactive pad that walks through the configured labels.
Any arguments are run as a single pad command instead.`,
	RunE: func(_ *cobra.Command, args []string) error {
		return shell.RunShell(cfg, padStudent, args)
	},
}

func init() {
	padCmd.Flags().StringVarP(&padStudent, "student", "s", "", "student name")
	_ = padCmd.MarkFlagRequired("student")
	rootCmd.AddCommand(padCmd)
}
