package system

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if a settings store already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		if err := ctx.Store.Load(); err == nil {
			fmt.Println("Settings store already initialized. Use --force to reinitialize.")
			return nil
		}
	}
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("failed to initialize settings store: %w", err)
	}
	fmt.Printf("Initialized settings store at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Next: respira settings set api-url <url>, then respira login")
	return nil
}
