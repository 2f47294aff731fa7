package rm

import (
	"bytes"
	"encoding/binary"
)

// MarshalBinary implements encoding.MarshalBinary for
// transforming a Rm page into bytes. Pages are always written as v5.
func (rm *Rm) MarshalBinary() (data []byte, err error) {
	w := new(writer)

	w.writeHeader()

	nbLayers := len(rm.Layers)
	w.writeNumber(nbLayers)

	for _, layer := range rm.Layers {
		nbLines := len(layer.Lines)
		w.writeNumber(nbLines)

		for _, line := range layer.Lines {
			if err := w.writeLine(line); err != nil {
				return nil, err
			}
		}
	}
	data = w.Bytes()

	return
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader() {
	w.b.WriteString(HeaderV5)
}

func (w *writer) writeNumber(n int) {
	binary.Write(&w.b, binary.LittleEndian, uint32(n))
}

func (w *writer) writeLine(line Line) error {
	h := lineHeader{
		BrushType:  line.BrushType,
		BrushColor: line.BrushColor,
		Padding:    line.Padding,
		BrushSize:  line.BrushSize,
	}
	if err := binary.Write(&w.b, binary.LittleEndian, h); err != nil {
		return err
	}
	if err := binary.Write(&w.b, binary.LittleEndian, line.Unknown); err != nil {
		return err
	}

	w.writeNumber(len(line.Points))
	return binary.Write(&w.b, binary.LittleEndian, line.Points)
}
