package rm

import "github.com/juruen/sketchset/model"

// ToPathSet maps the ink of a page into a size x size square. The page is
// scaled to fit its height and centered horizontally. Eraser lines and
// lines without points are dropped.
func ToPathSet(page *Rm, size int) model.PathSet {
	scale := float64(size) / DeviceHeight
	offsetX := (float64(size) - DeviceWidth*scale) / 2

	var paths model.PathSet
	for _, layer := range page.Layers {
		for _, line := range layer.Lines {
			if line.IsEraser() || len(line.Points) == 0 {
				continue
			}

			path := make(model.Path, len(line.Points))
			for i, p := range line.Points {
				path[i] = model.Point{
					X: float64(p.X)*scale + offsetX,
					Y: float64(p.Y) * scale,
				}
			}
			paths = append(paths, path)
		}
	}
	return paths
}
