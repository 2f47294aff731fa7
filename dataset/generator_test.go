package dataset

import (
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juruen/sketchset/config"
	"github.com/juruen/sketchset/model"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	cfg := config.New(dir)
	cfg.SamplesJS = filepath.Join(dir, "js_objects", "samples.js")
	require.NoError(t, os.MkdirAll(cfg.RawDir, 0755))
	return cfg
}

func writeRaw(t *testing.T, cfg *config.Config, name, content string) {
	require.NoError(t, ioutil.WriteFile(filepath.Join(cfg.RawDir, name), []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunSingleRecord(t *testing.T) {
	cfg := testConfig(t)
	writeRaw(t, cfg, "s1.json",
		`{"session":"s1","student":"Alice","drawings":{"cat":[[[0,0],[1,1]]],"dog":[[[2,2],[3,3]]]}}`)

	g := NewGenerator(cfg)
	samples, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, model.Manifest{
		{ID: 1, Label: "cat", StudentName: "Alice", StudentID: "s1"},
		{ID: 2, Label: "dog", StudentName: "Alice", StudentID: "s1"},
	}, samples)

	assert.Equal(t, `[[[0,0],[1,1]]]`, readFile(t, g.VectorPath(1)))
	assert.Equal(t, `[[[2,2],[3,3]]]`, readFile(t, g.VectorPath(2)))

	for _, id := range []int{1, 2} {
		f, err := os.Open(g.ImagePath(id))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
		assert.Equal(t, 400, img.Bounds().Dy())
	}

	want := `[{"id":1,"label":"cat","student_name":"Alice","student_id":"s1"},` +
		`{"id":2,"label":"dog","student_name":"Alice","student_id":"s1"}]`
	assert.Equal(t, want, readFile(t, cfg.Samples))
	assert.Equal(t, "const samples = "+want+";", readFile(t, cfg.SamplesJS))
}

func TestRunIdsFollowFileAndLabelOrder(t *testing.T) {
	cfg := testConfig(t)
	writeRaw(t, cfg, "b.json", `{"session":"b","student":"Bob","drawings":{"tree":[[[5,5],[6,6]]]}}`)
	writeRaw(t, cfg, "a.json",
		`{"session":"a","student":"Ann","drawings":{"fish":[[[1,1],[2,2]]],"car":[],"clock":[[[3,3]]]}}`)
	writeRaw(t, cfg, ".DS_Store", "junk")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.RawDir, "old"), 0755))

	var progress [][2]int
	g := NewGenerator(cfg, WithProgress(func(done, total int) {
		progress = append(progress, [2]int{done, total})
	}))
	samples, err := g.Run()
	require.NoError(t, err)

	require.Len(t, samples, 4)
	var labels []string
	for i, s := range samples {
		assert.Equal(t, i+1, s.ID)
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"fish", "car", "clock", "tree"}, labels)
	assert.Equal(t, "Bob", samples[3].StudentName)
	assert.Equal(t, "b", samples[3].StudentID)

	assert.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, progress)

	assert.Equal(t, `[]`, readFile(t, g.VectorPath(2)))
	assert.FileExists(t, g.ImagePath(2))
	assert.Equal(t, `[[[5,5],[6,6]]]`, readFile(t, g.VectorPath(4)))
}

func TestRunVectorRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	writeRaw(t, cfg, "s.json",
		`{"session":"s","student":"S","drawings":{"pencil":[[[10.5, 20.25], [30, 40]], [[399, 1]]]}}`)

	g := NewGenerator(cfg)
	_, err := g.Run()
	require.NoError(t, err)

	paths, err := model.ParsePathSet([]byte(readFile(t, g.VectorPath(1))))
	require.NoError(t, err)
	assert.Equal(t, model.PathSet{
		{{X: 10.5, Y: 20.25}, {X: 30, Y: 40}},
		{{X: 399, Y: 1}},
	}, paths)
}

func TestRunIsRepeatable(t *testing.T) {
	cfg := testConfig(t)
	writeRaw(t, cfg, "s1.json", `{"session":"s1","student":"A","drawings":{"cat":[[[0,0],[100,100]]]}}`)
	writeRaw(t, cfg, "s2.json", `{"session":"s2","student":"B","drawings":{"dog":[[[50,50],[60,90]]]}}`)

	g := NewGenerator(cfg)
	first, err := g.Run()
	require.NoError(t, err)
	image1 := readFile(t, g.ImagePath(1))
	manifest1 := readFile(t, cfg.Samples)

	second, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, image1, readFile(t, g.ImagePath(1)))
	assert.Equal(t, manifest1, readFile(t, cfg.Samples))
}

func TestRunEmptyRawDir(t *testing.T) {
	cfg := testConfig(t)

	samples, err := NewGenerator(cfg).Run()
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Equal(t, "[]", readFile(t, cfg.Samples))
}

func TestRunMalformedRecordAborts(t *testing.T) {
	tests := map[string]string{
		"invalid json":    `{"session":"s1",`,
		"missing drawing": `{"session":"s1","student":"A"}`,
	}

	for name, bad := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			writeRaw(t, cfg, "a.json", `{"session":"a","student":"A","drawings":{"cat":[[[0,0],[1,1]]]}}`)
			writeRaw(t, cfg, "b.json", bad)

			_, err := NewGenerator(cfg).Run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "b.json")

			assert.NoFileExists(t, filepath.Join(cfg.JSONDir, "1.json"))
			assert.NoFileExists(t, cfg.Samples)
		})
	}
}

func TestRunMissingRawDir(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(cfg.RawDir))

	_, err := NewGenerator(cfg).Run()
	assert.Error(t, err)
}
