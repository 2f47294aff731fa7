// Package draw strokes captured paths onto a 2D surface. The same routines
// back the interactive pad and the dataset rasterizer.
package draw

import (
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"

	"github.com/juruen/sketchset/model"
)

const LineWidth = 3

// DefaultColor is the ink used when no color is given
var DefaultColor color.Color = colornames.Black

// Surface is the subset of a 2D context the renderer needs. *gg.Context
// implements it.
type Surface interface {
	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetLineJoin(join gg.LineJoin)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke() error
}

// Path strokes one path with a single stroke operation. A path without
// points draws nothing.
func Path(s Surface, path model.Path, c color.Color) error {
	if len(path) == 0 {
		return nil
	}
	if c == nil {
		c = DefaultColor
	}

	s.SetColor(c)
	s.SetLineWidth(LineWidth)
	s.SetLineCap(gg.LineCapRound)
	s.SetLineJoin(gg.LineJoinRound)

	s.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		s.LineTo(p.X, p.Y)
	}

	return s.Stroke()
}

// Paths strokes every path in order
func Paths(s Surface, paths model.PathSet, c color.Color) error {
	for _, path := range paths {
		if err := Path(s, path, c); err != nil {
			return err
		}
	}
	return nil
}
