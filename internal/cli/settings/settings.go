package settings

import (
	"fmt"
	"strconv"

	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/utils"
	"github.com/respira-salud/respira-cli/internal/validation"
)

type SettingsCmd struct {
	Get GetCmd `cmd:"" help:"Show current settings." default:"1"`
	Set SetCmd `cmd:"" help:"Change a setting."`
}

type GetCmd struct{}

func (c *GetCmd) Run(ctx *cli.Context) error {
	s := ctx.Settings
	fmt.Printf("api-url:        %s\n", s.APIURL)
	fmt.Printf("timezone:       %s\n", s.Timezone)
	fmt.Printf("medico-default: %d\n", s.MedicoDefault)
	fmt.Printf("per-page:       %d\n", s.PerPage)
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Setting name: api-url, timezone, medico-default, per-page."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s := ctx.Settings
	switch c.Key {
	case "api-url":
		if err := validation.ValidateAPIURL(c.Value); err != nil {
			return err
		}
		s.APIURL = c.Value
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("invalid timezone %q", c.Value)
		}
		s.Timezone = c.Value
	case "medico-default":
		n, err := strconv.Atoi(c.Value)
		if err != nil || n < 0 {
			return fmt.Errorf("medico-default must be a non-negative integer")
		}
		s.MedicoDefault = n
	case "per-page":
		n, err := strconv.Atoi(c.Value)
		if err != nil || n <= 0 {
			return fmt.Errorf("per-page must be a positive integer")
		}
		s.PerPage = n
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := ctx.Store.SaveSettings(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("%s = %s\n", c.Key, c.Value)
	return nil
}
