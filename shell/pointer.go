package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/juruen/sketchset/model"
)

func downCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "down",
		Help: "press the pointer, usage: down x y",
		Func: func(c *ishell.Context) {
			points, err := parsePoints(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.pad.PointerDown(points[0])
		},
	}
}

func moveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "move",
		Help: "move the pointer, usage: move x y [x y]...",
		Func: func(c *ishell.Context) {
			points, err := parsePoints(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			for _, p := range points {
				ctx.pad.PointerMove(p)
			}
		},
	}
}

func upCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "up",
		Help: "release the pointer",
		Func: func(c *ishell.Context) {
			ctx.pad.PointerUp()
		},
	}
}

func touchStartCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "touchstart",
		Help: "start a touch, usage: touchstart x y [x y]... (first touch draws)",
		Func: func(c *ishell.Context) {
			touches, err := parsePoints(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.pad.TouchStart(touches)
		},
	}
}

func touchMoveCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "touchmove",
		Help: "move a touch, usage: touchmove x y [x y]... (first touch draws)",
		Func: func(c *ishell.Context) {
			touches, err := parsePoints(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.pad.TouchMove(touches)
		},
	}
}

func touchEndCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "touchend",
		Help: "end the touch",
		Func: func(c *ishell.Context) {
			ctx.pad.TouchEnd()
		},
	}
}

// stroke draws a whole stroke: down on the first point, move through the
// others, then up
func (ctx *ShellCtxt) stroke(points []model.Point) {
	ctx.pad.PointerDown(points[0])
	for _, p := range points[1:] {
		ctx.pad.PointerMove(p)
	}
	ctx.pad.PointerUp()
}

func strokeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "stroke",
		Help: "draw a complete stroke, usage: stroke x y [x y]...",
		Func: func(c *ishell.Context) {
			points, err := parsePoints(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			ctx.stroke(points)
		},
	}
}
