package main

import (
	"github.com/spf13/cobra"

	"github.com/juruen/sketchset/dataset"
	"github.com/juruen/sketchset/util"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build vector files, images and the sample manifest from raw records",
	Long: `Reads every capture record in the raw directory, writes one vector file
and one PNG per drawing, and rewrites the sample manifest and its script
twin. Sample ids start at 1 on every run.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	g := dataset.NewGenerator(cfg, dataset.WithProgress(func(done, total int) {
		util.PrintProgress(out, done, total, "Processing Images")
	}))

	samples, err := g.Run()
	if err != nil {
		return err
	}

	cmd.Printf("%d samples written to %s\n", len(samples), cfg.Samples)
	return nil
}
