package session

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/keyring"
)

type LoginCmd struct {
	Token string `help:"API bearer token. Prompted for interactively when omitted." optional:""`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	token := c.Token
	if token == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("API token").
					EchoMode(huh.EchoModePassword).
					Value(&token).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("token cannot be empty")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	// Verify before storing so a rejected token never lands in the keyring.
	if err := verifyToken(ctx, token); err != nil {
		return fmt.Errorf("token rejected, nothing stored: %w", err)
	}

	if err := keyring.SetToken(token); err != nil {
		return err
	}

	fmt.Println("Token verified and stored in OS keyring.")
	return nil
}

// verifyToken checks the candidate token against a cheap authenticated
// endpoint. It uses a one-shot client bound to that token: the shared client's
// token source reads the environment and keyring, neither of which holds the
// candidate yet.
func verifyToken(ctx *cli.Context, token string) error {
	client := api.New(api.Config{
		BaseURL: ctx.API.BaseURL(),
		Token:   func() (string, error) { return token, nil },
	})

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()
	_, err := client.Terapeutas(reqCtx)
	return err
}
