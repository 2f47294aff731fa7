package shell

import (
	"github.com/abiosoft/ishell"
	"github.com/pkg/errors"
)

// undoLast drops the last stroke. A stroke made of a single point never
// triggers a redraw, so the pad content decides rather than the button.
func (ctx *ShellCtxt) undoLast() error {
	if ctx.pad.Empty() {
		return errors.New("nothing to undo")
	}
	ctx.pad.Undo()
	return nil
}

func undoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "undo",
		Help: "remove the last stroke",
		Func: func(c *ishell.Context) {
			if err := ctx.undoLast(); err != nil {
				c.Err(err)
			}
		},
	}
}

func resetCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "reset",
		Help: "clear the pad",
		Func: func(c *ishell.Context) {
			ctx.pad.Reset()
		},
	}
}
