package shell

import (
	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"

	"github.com/juruen/sketchset/log"
)

// next stores the pad content under the current label and clears the pad
func (ctx *ShellCtxt) next() error {
	label := ctx.session.Label()
	if err := ctx.session.Commit(ctx.pad.Paths()); err != nil {
		return err
	}
	log.Info.Printf("stored %s\n", label)
	ctx.pad.Reset()
	return nil
}

func (ctx *ShellCtxt) save() (string, error) {
	if !ctx.session.Done() {
		done, total := ctx.session.Progress()
		log.Warning.Printf("saving incomplete session, %d of %d drawings\n", done, total)
	}

	path, err := ctx.session.Save(ctx.cfg.RawDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to save session")
	}
	ctx.saved = path
	return path, nil
}

func nextCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "next",
		Help: "store the drawing and move to the next label",
		Func: func(c *ishell.Context) {
			if err := ctx.next(); err != nil {
				c.Err(err)
				return
			}

			c.SetPrompt(ctx.prompt())
			if ctx.session.Done() {
				c.Println("all labels drawn, use save to store the session")
				return
			}
			c.Printf("Draw a %s\n", ctx.session.Label())
		},
	}
}

func saveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "save",
		Help: "write the session record to the raw directory",
		Func: func(c *ishell.Context) {
			path, err := ctx.save()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("saved %s\n", path)
		},
	}
}

func statusCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "status",
		Help: "show session progress",
		Func: func(c *ishell.Context) {
			done, total := ctx.session.Progress()
			c.Printf("session: %s\n", ctx.session.ID)
			c.Printf("student: %s\n", ctx.session.Student)
			c.Printf("drawn:   %d/%d\n", done, total)
			c.Printf("strokes: %d, undo %s\n", len(ctx.pad.Paths()), ctx.undo)
			if !ctx.session.Done() {
				c.Printf("label:   %s\n", ctx.session.Label())
			}
			if ctx.saved != "" {
				c.Printf("saved:   %s\n", ctx.saved)
			}
		},
	}
}
