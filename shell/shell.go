package shell

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"

	"github.com/juruen/sketchset/config"
	"github.com/juruen/sketchset/draw"
	"github.com/juruen/sketchset/model"
	"github.com/juruen/sketchset/sketchpad"
)

// undoButton mirrors the enabled state of the pad's undo affordance
type undoButton struct {
	disabled bool
}

func (b *undoButton) SetDisabled(disabled bool) {
	b.disabled = disabled
}

func (b *undoButton) String() string {
	if b.disabled {
		return "disabled"
	}
	return "enabled"
}

type ShellCtxt struct {
	cfg     *config.Config
	canvas  *draw.Canvas
	pad     *sketchpad.Pad
	undo    *undoButton
	session *sketchpad.Session
	saved   string
}

func NewShellCtxt(cfg *config.Config, student string) *ShellCtxt {
	ctx := &ShellCtxt{
		cfg:     cfg,
		canvas:  draw.NewCanvas(cfg.CanvasSize, cfg.CanvasSize),
		undo:    &undoButton{},
		session: sketchpad.NewSession(student, cfg.Labels),
	}
	ctx.pad = sketchpad.New(ctx.canvas, ctx.undo)
	return ctx
}

func (ctx *ShellCtxt) Close() error {
	return ctx.canvas.Close()
}

func (ctx *ShellCtxt) prompt() string {
	if ctx.session.Done() {
		return fmt.Sprintf("[%s: done]>", ctx.session.Student)
	}
	done, total := ctx.session.Progress()
	return fmt.Sprintf("[%s: %s %d/%d]>", ctx.session.Student, ctx.session.Label(), done+1, total)
}

// parsePoints reads "x y [x y]..." arguments
func parsePoints(args []string) ([]model.Point, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errors.New("expected x y coordinate pairs")
	}

	points := make([]model.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad x %q", args[i])
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad y %q", args[i+1])
		}
		points = append(points, model.Point{X: x, Y: y})
	}
	return points, nil
}

// RunShell starts the capture pad for student. With args the commands are
// executed without entering the interactive loop.
func RunShell(cfg *config.Config, student string, args []string) error {
	if student == "" {
		return errors.New("missing student name")
	}

	shell := ishell.New()
	ctx := NewShellCtxt(cfg, student)
	defer ctx.Close()

	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(downCmd(ctx))
	shell.AddCmd(moveCmd(ctx))
	shell.AddCmd(upCmd(ctx))
	shell.AddCmd(touchStartCmd(ctx))
	shell.AddCmd(touchMoveCmd(ctx))
	shell.AddCmd(touchEndCmd(ctx))
	shell.AddCmd(strokeCmd(ctx))
	shell.AddCmd(undoCmd(ctx))
	shell.AddCmd(resetCmd(ctx))
	shell.AddCmd(lsCmd(ctx))
	shell.AddCmd(pathsCmd(ctx))
	shell.AddCmd(statusCmd(ctx))
	shell.AddCmd(nextCmd(ctx))
	shell.AddCmd(saveCmd(ctx))
	shell.AddCmd(previewCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Printf("Sketch pad, student: %s, session: %s\n", student, ctx.session.ID)
	shell.Printf("Draw a %s\n", ctx.session.Label())
	shell.Run()

	return nil
}
