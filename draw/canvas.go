package draw

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/juruen/sketchset/model"
)

var ErrUnknownColor = errors.New("unknown color")

// Canvas is an offscreen raster surface with a white background
type Canvas struct {
	*gg.Context
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{gg.NewContext(width, height)}
	c.Clear()
	return c
}

// Clear paints the whole canvas white
func (c *Canvas) Clear() {
	c.ClearWithColor(gg.White)
}

// Render clears the canvas and draws paths on it
func (c *Canvas) Render(paths model.PathSet, col color.Color) error {
	c.Clear()
	return Paths(c, paths, col)
}

// WritePNG encodes the canvas to w
func (c *Canvas) WritePNG(w io.Writer) error {
	return c.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "can't create %s", path)
	}

	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "can't encode %s", path)
	}

	return errors.Wrapf(f.Close(), "can't write %s", path)
}

// ParseColor accepts a CSS color name or a #rgb, #rgba, #rrggbb or #rrggbbaa hex value
func ParseColor(name string) (color.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultColor, nil
	}

	if strings.HasPrefix(name, "#") {
		hex := name[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, errors.Wrap(ErrUnknownColor, name)
		}
		for _, r := range strings.ToLower(hex) {
			if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
				return nil, errors.Wrap(ErrUnknownColor, name)
			}
		}
		return gg.Hex(name).Color(), nil
	}

	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrap(ErrUnknownColor, name)
	}
	return c, nil
}
