package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrMissingDrawings = errors.New("record has no drawings")

// Drawing is one labeled PathSet of a capture record. Raw keeps the
// compacted JSON of the paths exactly as they were read.
type Drawing struct {
	Label string
	Paths PathSet
	Raw   json.RawMessage
}

// RawCaptureRecord is the content of one capture session file:
//
//	{"session": "...", "student": "...", "drawings": {"label": [[[x,y],...],...], ...}}
//
// Drawings keep the order of the labels in the file.
type RawCaptureRecord struct {
	Session  string
	Student  string
	Drawings []Drawing
}

type recordJSON struct {
	Session  string          `json:"session"`
	Student  string          `json:"student"`
	Drawings json.RawMessage `json:"drawings"`
}

// ParseRecord decodes a capture file
func ParseRecord(data []byte) (*RawCaptureRecord, error) {
	rec := &RawCaptureRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Labels lists the drawing labels in file order
func (r *RawCaptureRecord) Labels() []string {
	labels := make([]string, len(r.Drawings))
	for i, d := range r.Drawings {
		labels[i] = d.Label
	}
	return labels
}

// Set stores paths under label, replacing an existing drawing in place
func (r *RawCaptureRecord) Set(label string, paths PathSet) error {
	raw, err := json.Marshal(paths)
	if err != nil {
		return err
	}
	d := Drawing{Label: label, Paths: paths.Clone(), Raw: raw}
	for i := range r.Drawings {
		if r.Drawings[i].Label == label {
			r.Drawings[i] = d
			return nil
		}
	}
	r.Drawings = append(r.Drawings, d)
	return nil
}

func (r *RawCaptureRecord) UnmarshalJSON(data []byte) error {
	var aux recordJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.Wrap(err, "can't parse record")
	}

	trimmed := bytes.TrimSpace(aux.Drawings)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrMissingDrawings
	}

	drawings, err := decodeDrawings(trimmed)
	if err != nil {
		return err
	}

	r.Session = aux.Session
	r.Student = aux.Student
	r.Drawings = drawings
	return nil
}

// decodeDrawings walks the drawings object token by token, a map would lose
// the label order.
func decodeDrawings(data []byte) ([]Drawing, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "can't parse drawings")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("drawings must be an object, got %v", tok)
	}

	var drawings []Drawing
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "can't parse drawings")
		}
		label := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(err, "can't parse drawing %q", label)
		}

		var paths PathSet
		if err := json.Unmarshal(raw, &paths); err != nil {
			return nil, errors.Wrapf(err, "can't parse drawing %q", label)
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return nil, errors.Wrapf(err, "can't parse drawing %q", label)
		}

		if paths == nil {
			return nil, errors.Errorf("drawing %q has no paths", label)
		}

		d := Drawing{Label: label, Paths: paths, Raw: compact.Bytes()}
		if i, ok := index[label]; ok {
			drawings[i] = d
			continue
		}
		index[label] = len(drawings)
		drawings = append(drawings, d)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "can't parse drawings")
	}
	return drawings, nil
}

func (r RawCaptureRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range r.Drawings {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(d.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')

		raw, err := d.RawJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')

	return json.Marshal(recordJSON{
		Session:  r.Session,
		Student:  r.Student,
		Drawings: buf.Bytes(),
	})
}

// RawJSON returns the vector JSON of the drawing, the bytes that were read
// when there are any.
func (d Drawing) RawJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}
	if d.Paths == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Paths)
}
