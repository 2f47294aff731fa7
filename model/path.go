package model

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrMalformedPoint = errors.New("point must be a [x, y] pair")

// Point is a surface coordinate in pixels, encoded as [x, y]
type Point struct {
	X float64
	Y float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return errors.Wrap(ErrMalformedPoint, err.Error())
	}
	if len(xy) != 2 {
		return errors.Wrapf(ErrMalformedPoint, "got %d coordinates", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("[%g,%g]", p.X, p.Y)
}

// Path is one stroke, points in the order they were captured
type Path []Point

// PathSet holds all the strokes of one drawing in render order
type PathSet []Path

// Clone returns a deep copy
func (ps PathSet) Clone() PathSet {
	if ps == nil {
		return nil
	}
	out := make(PathSet, len(ps))
	for i, path := range ps {
		out[i] = append(Path(nil), path...)
	}
	return out
}

// PointCount is the number of points over all paths
func (ps PathSet) PointCount() int {
	n := 0
	for _, path := range ps {
		n += len(path)
	}
	return n
}

// ParsePathSet decodes a vector sample: [[[x,y],...],...]
func ParsePathSet(data []byte) (PathSet, error) {
	var ps PathSet
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, errors.Wrap(err, "can't parse paths")
	}
	return ps, nil
}
