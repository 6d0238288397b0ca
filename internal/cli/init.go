package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.KV.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized candy storage at %s\n", ctx.KV.ConfigPath())
	return nil
}
