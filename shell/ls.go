package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchset/model"
)

func displayPath(c *ishell.Context, i int, p model.Path) {
	if len(p) == 0 {
		c.Printf("[%d]\t0 points\n", i)
		return
	}
	c.Printf("[%d]\t%d points\t%s -> %s\n", i, len(p), p[0], p[len(p)-1])
}

func lsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ls",
		Help: "list strokes on the pad",
		Func: func(c *ishell.Context) {
			paths := ctx.pad.Paths()
			if len(paths) == 0 {
				c.Println("pad is empty")
				return
			}

			for i, p := range paths {
				displayPath(c, i, p)
			}
			c.Printf("state: %s, undo: %s\n", ctx.pad.State(), ctx.undo)
		},
	}
}
