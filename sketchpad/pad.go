// Package sketchpad captures free-hand strokes. Pad is the drawing state
// machine shared by every input device, Session walks a student through a
// list of labels and produces the raw capture record.
package sketchpad

import (
	"github.com/juruen/sketchset/draw"
	"github.com/juruen/sketchset/log"
	"github.com/juruen/sketchset/model"
)

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Surface is what the pad draws on
type Surface interface {
	draw.Surface
	Clear()
}

// UndoControl is the undo affordance, disabled while there is nothing to undo
type UndoControl interface {
	SetDisabled(disabled bool)
}

// Pad holds the strokes of one drawing and redraws them on every change.
// It is not safe for concurrent use, events are handled one at a time.
type Pad struct {
	surface Surface
	undo    UndoControl
	paths   model.PathSet
	state   State
}

// New creates an empty pad. undo may be nil.
func New(surface Surface, undo UndoControl) *Pad {
	p := &Pad{surface: surface, undo: undo}
	p.redraw()
	return p
}

// PointerDown starts a new stroke at pos
func (p *Pad) PointerDown(pos model.Point) {
	p.paths = append(p.paths, model.Path{pos})
	p.state = Drawing
}

// PointerMove extends the current stroke, ignored when no stroke is active.
// An undo while drawing can remove the stroke being extended.
func (p *Pad) PointerMove(pos model.Point) {
	if p.state != Drawing || len(p.paths) == 0 {
		return
	}
	last := len(p.paths) - 1
	p.paths[last] = append(p.paths[last], pos)
	p.redraw()
}

func (p *Pad) PointerUp() {
	p.state = Idle
}

// TouchStart uses the first touch point like a pointer
func (p *Pad) TouchStart(touches []model.Point) {
	if len(touches) == 0 {
		return
	}
	p.PointerDown(touches[0])
}

func (p *Pad) TouchMove(touches []model.Point) {
	if len(touches) == 0 {
		return
	}
	p.PointerMove(touches[0])
}

func (p *Pad) TouchEnd() {
	p.PointerUp()
}

// Undo drops the last stroke
func (p *Pad) Undo() {
	if len(p.paths) > 0 {
		p.paths = p.paths[:len(p.paths)-1]
	}
	p.redraw()
}

// Reset drops every stroke
func (p *Pad) Reset() {
	p.paths = nil
	p.state = Idle
	p.redraw()
}

func (p *Pad) State() State {
	return p.state
}

// Paths returns a copy of the captured strokes
func (p *Pad) Paths() model.PathSet {
	return p.paths.Clone()
}

func (p *Pad) Empty() bool {
	return len(p.paths) == 0
}

func (p *Pad) redraw() {
	if p.surface != nil {
		p.surface.Clear()
		if err := draw.Paths(p.surface, p.paths, draw.DefaultColor); err != nil {
			log.Warning.Printf("redraw failed: %v", err)
		}
	}
	if p.undo != nil {
		p.undo.SetDisabled(p.Empty())
	}
}
