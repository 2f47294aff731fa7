package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("data", "raw"), cfg.RawDir)
	assert.Equal(t, filepath.Join("data", "dataset", "json"), cfg.JSONDir)
	assert.Equal(t, filepath.Join("data", "dataset", "image"), cfg.ImageDir)
	assert.Equal(t, filepath.Join("data", "dataset", "samples.json"), cfg.Samples)
	assert.Equal(t, filepath.Join("common", "js_objects", "samples.js"), cfg.SamplesJS)
	assert.Equal(t, 400, cfg.CanvasSize)
	assert.Len(t, cfg.Labels, 8)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDerivesFromDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketchset.yaml")
	content := "data_dir: /srv/drawings\nsamples_js: web/samples.js\nlabels: [cat, dog]\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/drawings/raw", cfg.RawDir)
	assert.Equal(t, "/srv/drawings/dataset/json", cfg.JSONDir)
	assert.Equal(t, "/srv/drawings/dataset/samples.json", cfg.Samples)
	assert.Equal(t, "web/samples.js", cfg.SamplesJS)
	assert.Equal(t, []string{"cat", "dog"}, cfg.Labels)
	assert.Equal(t, DefaultCanvasSize, cfg.CanvasSize)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, ioutil.WriteFile(bad, []byte("canvas_size: [1"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, ioutil.WriteFile(negative, []byte("canvas_size: -3\n"), 0644))
	_, err = Load(negative)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cfg := New("/tmp/sketches")
	assert.Equal(t, "/tmp/sketches/raw", cfg.RawDir)
	assert.Equal(t, "/tmp/sketches/dataset/image", cfg.ImageDir)
}
