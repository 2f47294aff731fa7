package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/juruen/sketchset/draw"
	"github.com/juruen/sketchset/model"
)

var (
	renderInput  string
	renderOutput string
	renderColor  string
	renderSize   int
)

var renderCmd = &cobra.Command{
	Use:   "render -i <paths.json> [-o <out.png>]",
	Short: "Render a vector file to PNG",
	Args:  cobra.NoArgs,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "vector file")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "png file, defaults to the input name")
	renderCmd.Flags().StringVar(&renderColor, "color", "", "stroke color name or hex")
	renderCmd.Flags().IntVar(&renderSize, "size", 0, "canvas size, defaults to the configured one")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	col, err := draw.ParseColor(renderColor)
	if err != nil {
		return err
	}

	data, err := ioutil.ReadFile(renderInput)
	if err != nil {
		return errors.Wrap(err, "can't read input")
	}
	paths, err := model.ParsePathSet(data)
	if err != nil {
		return errors.Wrapf(err, "%s", renderInput)
	}

	size := renderSize
	if size <= 0 {
		size = cfg.CanvasSize
	}

	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(renderInput, filepath.Ext(renderInput)) + ".png"
	}

	canvas := draw.NewCanvas(size, size)
	defer canvas.Close()

	if err := canvas.Render(paths, col); err != nil {
		return err
	}
	if err := canvas.SavePNG(output); err != nil {
		return err
	}

	cmd.Printf("%d strokes rendered to %s\n", len(paths), output)
	return nil
}
