package shell

import (
	"encoding/json"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"
)

// pathsJSON encodes the pad content the way it is stored in raw records
func (ctx *ShellCtxt) pathsJSON(indent bool) (string, error) {
	paths := ctx.pad.Paths()

	var output []byte
	var err error
	if indent {
		output, err = json.MarshalIndent(paths, "", "  ")
	} else {
		output, err = json.Marshal(paths)
	}
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func pathsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "paths",
		Help: "print the pad strokes as json, usage: paths [-i]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("paths", flag.ContinueOnError)
			indent := flagSet.BoolP("indent", "i", false, "indent output")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			output, err := ctx.pathsJSON(*indent)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(output)
		},
	}
}
