// Package dataset turns raw capture records into a labeled dataset: one
// vector JSON file and one PNG per (record, label), plus the manifest.
package dataset

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/juruen/sketchset/config"
	"github.com/juruen/sketchset/draw"
	"github.com/juruen/sketchset/log"
	"github.com/juruen/sketchset/manifest"
	"github.com/juruen/sketchset/model"
)

// ProgressFunc is called after every sample with the number of samples
// written so far and the total for the run
type ProgressFunc func(done, total int)

type Option func(*Generator)

func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		if fn != nil {
			g.progress = fn
		}
	}
}

// Generator runs the dataset assembly. It renders every sample on a single
// canvas, so one Generator must not run concurrently with itself.
type Generator struct {
	rawDir   string
	jsonDir  string
	imageDir string
	size     int
	manifest manifest.Writer
	progress ProgressFunc
}

func NewGenerator(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		rawDir:   cfg.RawDir,
		jsonDir:  cfg.JSONDir,
		imageDir: cfg.ImageDir,
		size:     cfg.CanvasSize,
		manifest: manifest.Writer{DataPath: cfg.Samples, ScriptPath: cfg.SamplesJS},
		progress: func(int, int) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// VectorPath is where the paths of sample id are stored
func (g *Generator) VectorPath(id int) string {
	return filepath.Join(g.jsonDir, strconv.Itoa(id)+".json")
}

// ImagePath is where the rendering of sample id is stored
func (g *Generator) ImagePath(id int) string {
	return filepath.Join(g.imageDir, strconv.Itoa(id)+".png")
}

type rawFile struct {
	name   string
	record *model.RawCaptureRecord
}

// Run reads every raw record, writes the samples and the manifest. Ids start
// at 1 on every run. All records are parsed before anything is written, a
// malformed record aborts the run.
func (g *Generator) Run() (model.Manifest, error) {
	files, err := g.readRawFiles()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, f := range files {
		total += len(f.record.Drawings)
	}
	log.Trace.Printf("dataset: %d raw files, %d samples", len(files), total)

	for _, dir := range []string{g.jsonDir, g.imageDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "can't create %s", dir)
		}
	}

	canvas := draw.NewCanvas(g.size, g.size)
	defer canvas.Close()

	a := &assembly{g: g, canvas: canvas, nextID: 1, total: total}
	for _, f := range files {
		for _, d := range f.record.Drawings {
			if err := a.add(f.record, d); err != nil {
				return nil, errors.Wrapf(err, "%s: %s", f.name, d.Label)
			}
		}
	}

	if err := g.manifest.Write(a.samples); err != nil {
		return nil, err
	}
	return a.samples, nil
}

// readRawFiles parses the raw directory in file name order. Directories and
// hidden files are skipped.
func (g *Generator) readRawFiles() ([]rawFile, error) {
	entries, err := os.ReadDir(g.rawDir)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list %s", g.rawDir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var files []rawFile
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		path := filepath.Join(g.rawDir, e.Name())
		content, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "can't read %s", path)
		}

		rec, err := model.ParseRecord(content)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid record %s", path)
		}
		files = append(files, rawFile{name: e.Name(), record: rec})
	}
	return files, nil
}

// assembly carries the state of one run: the next id and the samples so far
type assembly struct {
	g       *Generator
	canvas  *draw.Canvas
	nextID  int
	total   int
	samples model.Manifest
}

func (a *assembly) add(rec *model.RawCaptureRecord, d model.Drawing) error {
	id := a.nextID

	vector, err := d.RawJSON()
	if err != nil {
		return err
	}
	vectorPath := a.g.VectorPath(id)
	if err := ioutil.WriteFile(vectorPath, vector, 0644); err != nil {
		return errors.Wrapf(err, "can't write %s", vectorPath)
	}

	if err := a.canvas.Render(d.Paths, draw.DefaultColor); err != nil {
		return errors.Wrapf(err, "can't render sample %d", id)
	}
	if err := a.canvas.SavePNG(a.g.ImagePath(id)); err != nil {
		return err
	}

	a.samples = append(a.samples, model.Sample{
		ID:          id,
		Label:       d.Label,
		StudentName: rec.Student,
		StudentID:   rec.Session,
	})
	a.nextID++
	a.g.progress(id, a.total)
	return nil
}
