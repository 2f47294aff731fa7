// Package config holds the directory layout and drawing parameters of a
// dataset, loaded from an optional YAML file.
package config

import (
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultDataDir    = "data"
	DefaultObjectsDir = "common/js_objects"
	DefaultCanvasSize = 400
)

// DefaultLabels is the drawing sequence a capture session walks through
var DefaultLabels = []string{
	"car", "fish", "house", "tree", "bicycle", "guitar", "pencil", "clock",
}

type Config struct {
	DataDir    string   `yaml:"data_dir"`
	RawDir     string   `yaml:"raw_dir"`
	JSONDir    string   `yaml:"json_dir"`
	ImageDir   string   `yaml:"image_dir"`
	Samples    string   `yaml:"samples"`
	SamplesJS  string   `yaml:"samples_js"`
	CanvasSize int      `yaml:"canvas_size"`
	Labels     []string `yaml:"labels"`
}

// Default returns the layout rooted at DefaultDataDir
func Default() *Config {
	return New(DefaultDataDir)
}

// New returns the default layout rooted at dataDir
func New(dataDir string) *Config {
	cfg := &Config{DataDir: dataDir}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file. Fields missing from the file keep their
// defaults, and the dataset paths are derived from data_dir when unset.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read config %s", path)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrapf(err, "can't parse config %s", path)
	}
	if cfg.CanvasSize < 0 {
		return nil, errors.Errorf("invalid canvas_size %d", cfg.CanvasSize)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	datasetDir := filepath.Join(c.DataDir, "dataset")
	if c.RawDir == "" {
		c.RawDir = filepath.Join(c.DataDir, "raw")
	}
	if c.JSONDir == "" {
		c.JSONDir = filepath.Join(datasetDir, "json")
	}
	if c.ImageDir == "" {
		c.ImageDir = filepath.Join(datasetDir, "image")
	}
	if c.Samples == "" {
		c.Samples = filepath.Join(datasetDir, "samples.json")
	}
	if c.SamplesJS == "" {
		c.SamplesJS = filepath.Join(DefaultObjectsDir, "samples.js")
	}
	if c.CanvasSize == 0 {
		c.CanvasSize = DefaultCanvasSize
	}
	if len(c.Labels) == 0 {
		c.Labels = append([]string(nil), DefaultLabels...)
	}
}
