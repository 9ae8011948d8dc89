package session

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/keyring"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	fmt.Printf("API: %s\n", ctx.API.BaseURL())

	token, err := keyring.GetToken()
	if err != nil {
		fmt.Println("Session: not logged in")
		return nil
	}
	fmt.Printf("Session: token stored (%s)\n", mask(token))

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()
	if _, err := ctx.API.Terapeutas(reqCtx); err != nil {
		fmt.Printf("Status: token rejected (%v)\n", err)
		return nil
	}
	fmt.Println("Status: token valid")
	return nil
}

func mask(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
