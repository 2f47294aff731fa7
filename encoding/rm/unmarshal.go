package rm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// UnmarshalBinary implements encoding.UnmarshalBinary for
// transforming bytes into a Rm page
func (rm *Rm) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}
	rm.Version = r.version

	if r.version == V6 {
		return ErrUnsupportedVersion
	}

	nbLayers, err := r.readNumber()
	if err != nil {
		return err
	}

	if int64(nbLayers)*4 > int64(r.Len()) {
		return fmt.Errorf("page has %d layers, page is truncated", nbLayers)
	}

	rm.Layers = make([]Layer, nbLayers)
	for i := uint32(0); i < nbLayers; i++ {
		nbLines, err := r.readNumber()
		if err != nil {
			return err
		}

		if int64(nbLines)*minLineSize > int64(r.Len()) {
			return fmt.Errorf("layer %d has %d lines, page is truncated", i, nbLines)
		}

		rm.Layers[i].Lines = make([]Line, nbLines)
		for j := uint32(0); j < nbLines; j++ {
			line, err := r.readLine()
			if err != nil {
				return errors.Wrapf(err, "layer %d line %d", i, j)
			}
			rm.Layers[i].Lines[j] = line
		}
	}

	return nil
}

const (
	pointSize   = 6 * 4
	minLineSize = 5 * 4
)

type reader struct {
	bytes.Reader
	version Version
}

func newReader(data []byte) *reader {
	// V5 is only a default, the header decides
	return &reader{*bytes.NewReader(data), V5}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)

	n, err := r.Read(buf)
	if err != nil {
		return errors.Wrap(err, "can't read header")
	}

	if n != HeaderLen {
		return fmt.Errorf("wrong header size")
	}

	switch string(buf) {
	case HeaderV5:
		r.version = V5
	case HeaderV3:
		r.version = V3
	case HeaderV6:
		r.version = V6
	default:
		if strings.Contains(string(buf), "version=6") {
			r.version = V6
		} else {
			return fmt.Errorf("unknown header")
		}
	}

	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var nb uint32
	if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return 0, fmt.Errorf("wrong number read")
	}
	return nb, nil
}

// lineHeader is the fixed part of a line shared by v3 and v5
type lineHeader struct {
	BrushType  BrushType
	BrushColor BrushColor
	Padding    uint32
	BrushSize  BrushSize
}

func (r *reader) readLine() (Line, error) {
	var line Line

	var h lineHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return line, fmt.Errorf("failed to read line")
	}
	line.BrushType = h.BrushType
	line.BrushColor = h.BrushColor
	line.Padding = h.Padding
	line.BrushSize = h.BrushSize

	// this attribute has been added in v5
	if r.version == V5 {
		if err := binary.Read(r, binary.LittleEndian, &line.Unknown); err != nil {
			return line, fmt.Errorf("failed to read line")
		}
	}

	nbPoints, err := r.readNumber()
	if err != nil {
		return line, err
	}
	if nbPoints == 0 {
		return line, nil
	}
	if int64(nbPoints)*pointSize > int64(r.Len()) {
		return line, fmt.Errorf("line has %d points, page is truncated", nbPoints)
	}

	line.Points = make([]Point, nbPoints)
	if err := binary.Read(r, binary.LittleEndian, line.Points); err != nil {
		return line, fmt.Errorf("failed to read point")
	}

	return line, nil
}
