package sketchpad

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/juruen/sketchset/log"
	"github.com/juruen/sketchset/model"
)

var (
	ErrNothingDrawn = errors.New("nothing drawn")
	ErrSessionDone  = errors.New("all labels drawn")
)

// Session collects one drawing per label for a student
type Session struct {
	ID      string
	Student string

	labels []string
	next   int
	record *model.RawCaptureRecord
}

func NewSession(student string, labels []string) *Session {
	id := uuid.New().String()
	return &Session{
		ID:      id,
		Student: student,
		labels:  append([]string(nil), labels...),
		record:  &model.RawCaptureRecord{Session: id, Student: student},
	}
}

// Label is the label to draw next, empty once the session is done
func (s *Session) Label() string {
	if s.Done() {
		return ""
	}
	return s.labels[s.next]
}

func (s *Session) Done() bool {
	return s.next >= len(s.labels)
}

// Progress returns how many labels were drawn and how many there are
func (s *Session) Progress() (int, int) {
	return s.next, len(s.labels)
}

// Commit stores paths for the current label and moves to the next one
func (s *Session) Commit(paths model.PathSet) error {
	if s.Done() {
		return ErrSessionDone
	}
	if len(paths) == 0 {
		return ErrNothingDrawn
	}

	label := s.labels[s.next]
	if err := s.record.Set(label, paths); err != nil {
		return errors.Wrapf(err, "can't store %s", label)
	}
	log.Trace.Printf("session %s: stored %s, %d strokes", s.ID, label, len(paths))

	s.next++
	return nil
}

// Record returns the capture record for the labels drawn so far
func (s *Session) Record() *model.RawCaptureRecord {
	rec := &model.RawCaptureRecord{Session: s.record.Session, Student: s.record.Student}
	for _, d := range s.record.Drawings {
		d.Paths = d.Paths.Clone()
		d.Raw = append(json.RawMessage(nil), d.Raw...)
		rec.Drawings = append(rec.Drawings, d)
	}
	return rec
}

// Save writes the record to dir/<session>.json
func (s *Session) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "can't create %s", dir)
	}

	data, err := json.Marshal(s.Record())
	if err != nil {
		return "", errors.Wrap(err, "can't encode record")
	}

	out := filepath.Join(dir, s.ID+".json")
	if err := ioutil.WriteFile(out, data, 0644); err != nil {
		return "", errors.Wrapf(err, "can't write %s", out)
	}
	return out, nil
}
