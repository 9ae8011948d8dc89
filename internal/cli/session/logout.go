package session

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/keyring"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No stored session.")
			return nil
		}
		return err
	}
	fmt.Println("Session cleared.")
	return nil
}
