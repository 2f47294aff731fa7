package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/juruen/sketchset/encoding/rm"
	"github.com/juruen/sketchset/log"
	"github.com/juruen/sketchset/model"
	"github.com/juruen/sketchset/sketchpad"
)

var importStudent string

var importRmCmd = &cobra.Command{
	Use:   "import-rm <label>=<page.rm>...",
	Short: "Create a raw capture record from tablet pages",
	Long: `Converts reMarkable v3 or v5 pages into drawings, one page per label,
and saves them as a capture record in the raw directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImportRm,
}

func init() {
	importRmCmd.Flags().StringVarP(&importStudent, "student", "s", "", "student name")
	_ = importRmCmd.MarkFlagRequired("student")
	rootCmd.AddCommand(importRmCmd)
}

type pageArg struct {
	label string
	path  string
}

func parsePageArgs(args []string) ([]pageArg, error) {
	pages := make([]pageArg, 0, len(args))
	for _, a := range args {
		i := strings.Index(a, "=")
		if i <= 0 || i == len(a)-1 {
			return nil, fmt.Errorf("expected label=file, got %q", a)
		}
		pages = append(pages, pageArg{label: a[:i], path: a[i+1:]})
	}
	return pages, nil
}

func readPage(path string, size int) (model.PathSet, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't read page")
	}

	page := rm.New()
	if err := page.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.Trace.Printf("%s: %s, %d layers", path, page.Version, len(page.Layers))

	return rm.ToPathSet(page, size), nil
}

func runImportRm(cmd *cobra.Command, args []string) error {
	pages, err := parsePageArgs(args)
	if err != nil {
		return err
	}

	labels := make([]string, len(pages))
	for i, p := range pages {
		labels[i] = p.label
	}
	session := sketchpad.NewSession(importStudent, labels)

	for _, p := range pages {
		paths, err := readPage(p.path, cfg.CanvasSize)
		if err != nil {
			return err
		}
		if err := session.Commit(paths); err != nil {
			return errors.Wrapf(err, "%s", p.label)
		}
	}

	out, err := session.Save(cfg.RawDir)
	if err != nil {
		return err
	}

	cmd.Printf("record written to %s\n", out)
	return nil
}
