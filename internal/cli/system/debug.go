package system

import (
	"fmt"
	"runtime"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/constants"
)

type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *cli.Context) error {
	fmt.Printf("respira %s (%s/%s, %s)\n", constants.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Printf("settings store: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("api url:        %s\n", ctx.API.BaseURL())
	fmt.Printf("timezone:       %s\n", ctx.Settings.Timezone)
	fmt.Printf("medico default: %d\n", ctx.Settings.MedicoDefault)
	fmt.Printf("per page:       %d\n", ctx.Settings.PerPage)
	return nil
}
