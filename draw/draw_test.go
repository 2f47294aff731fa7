package draw

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/juruen/sketchset/model"
)

// recorder logs the calls a renderer makes
type recorder struct {
	calls   []string
	color   color.Color
	width   float64
	lineCap gg.LineCap
	join    gg.LineJoin
	strokes int
	failOn  int
}

func (r *recorder) SetColor(c color.Color)    { r.color = c; r.calls = append(r.calls, "color") }
func (r *recorder) SetLineWidth(w float64)    { r.width = w; r.calls = append(r.calls, "width") }
func (r *recorder) SetLineCap(c gg.LineCap)   { r.lineCap = c; r.calls = append(r.calls, "cap") }
func (r *recorder) SetLineJoin(j gg.LineJoin) { r.join = j; r.calls = append(r.calls, "join") }
func (r *recorder) MoveTo(x, y float64)       { r.calls = append(r.calls, point("move", x, y)) }
func (r *recorder) LineTo(x, y float64)       { r.calls = append(r.calls, point("line", x, y)) }

func point(op string, x, y float64) string { return op + model.Point{X: x, Y: y}.String() }

func (r *recorder) Stroke() error {
	r.strokes++
	r.calls = append(r.calls, "stroke")
	if r.failOn == r.strokes {
		return errors.New("stroke failed")
	}
	return nil
}

func TestPathSingleStroke(t *testing.T) {
	r := &recorder{}
	path := model.Path{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}

	require.NoError(t, Path(r, path, nil))

	assert.Equal(t, []string{
		"color", "width", "cap", "join",
		"move[1,2]", "line[3,4]", "line[5,6]",
		"stroke",
	}, r.calls)
	assert.Equal(t, float64(LineWidth), r.width)
	assert.Equal(t, gg.LineCapRound, r.lineCap)
	assert.Equal(t, gg.LineJoinRound, r.join)
	assert.Equal(t, DefaultColor, r.color)
}

func TestPathDegenerate(t *testing.T) {
	r := &recorder{}
	require.NoError(t, Path(r, model.Path{}, nil))
	assert.Empty(t, r.calls)

	require.NoError(t, Path(r, model.Path{{X: 7, Y: 7}}, colornames.Red))
	assert.Equal(t, 1, r.strokes)
	assert.Contains(t, r.calls, "move[7,7]")
	assert.Equal(t, colornames.Red, r.color)
}

func TestPathsOneStrokePerPath(t *testing.T) {
	r := &recorder{}
	paths := model.PathSet{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{},
		{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}},
	}

	require.NoError(t, Paths(r, paths, nil))
	assert.Equal(t, 2, r.strokes)

	r = &recorder{}
	require.NoError(t, Paths(r, nil, nil))
	assert.Empty(t, r.calls)
}

func TestPathsStopsOnError(t *testing.T) {
	r := &recorder{failOn: 1}
	err := Paths(r, model.PathSet{{{X: 0, Y: 0}, {X: 1, Y: 1}}, {{X: 2, Y: 2}, {X: 3, Y: 3}}}, nil)
	assert.Error(t, err)
	assert.Equal(t, 1, r.strokes)
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func isDark(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a > 0x8000 && r < 0x4000 && g < 0x4000 && b < 0x4000
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(400, 400)
	defer c.Close()

	require.NoError(t, c.Render(model.PathSet{{{X: 20, Y: 200}, {X: 380, Y: 200}}}, nil))

	img := c.Image()
	assert.True(t, isDark(img.At(200, 200)))
	assert.True(t, isWhite(img.At(200, 100)))
	assert.True(t, isWhite(img.At(5, 5)))

	require.NoError(t, c.Render(nil, nil))
	assert.True(t, isWhite(c.Image().At(200, 200)))
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(400, 400)
	defer c.Close()
	require.NoError(t, c.Render(model.PathSet{{{X: 0, Y: 0}, {X: 400, Y: 400}}}, nil))

	out := filepath.Join(t.TempDir(), "1.png")
	require.NoError(t, c.SavePNG(out))

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	assert.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "1.png")))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, c)

	c, err = ParseColor("Red")
	require.NoError(t, err)
	assert.Equal(t, colornames.Red, c)

	c, err = ParseColor("#00ff00")
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0, 0xffff}, []uint32{r, g, b, a})

	for _, bad := range []string{"ink", "#12", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.True(t, errors.Is(err, ErrUnknownColor), bad)
	}
}
