package shell

import (
	"fmt"
	"image/png"
	"os"

	"github.com/abiosoft/ishell"
	"github.com/nfnt/resize"
	flag "github.com/ogier/pflag"
	"github.com/pkg/errors"
)

// preview writes the pad canvas to path, scaled to size when size > 0
func (ctx *ShellCtxt) preview(path string, size int) error {
	if size <= 0 || size == ctx.cfg.CanvasSize {
		return ctx.canvas.SavePNG(path)
	}

	img := resize.Resize(uint(size), uint(size), ctx.canvas.Image(), resize.Lanczos3)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "can't create preview")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "can't encode %s", path)
	}
	return nil
}

func previewCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "preview",
		Help: "save the pad as PNG, usage: preview [--size n] <file.png>",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("preview", flag.ContinueOnError)
			size := flagSet.IntP("size", "s", 0, "scale the preview to size x size")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			args := flagSet.Args()

			out := fmt.Sprintf("%s.png", ctx.session.ID)
			if len(args) > 0 {
				out = args[0]
			}

			if err := ctx.preview(out, *size); err != nil {
				c.Err(err)
				return
			}
			c.Printf("preview written to %s\n", out)
		},
	}
}
