package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/cli"
	"github.com/respira-salud/respira-cli/internal/cli/citas"
	"github.com/respira-salud/respira-cli/internal/cli/session"
	"github.com/respira-salud/respira-cli/internal/cli/settings"
	"github.com/respira-salud/respira-cli/internal/cli/system"
	"github.com/respira-salud/respira-cli/internal/cli/turnos"
	"github.com/respira-salud/respira-cli/internal/constants"
	apperrors "github.com/respira-salud/respira-cli/internal/errors"
	"github.com/respira-salud/respira-cli/internal/keyring"
	"github.com/respira-salud/respira-cli/internal/logger"
	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings database path." type:"string" default:"~/.config/respira/respira.db"`
	APIURL  string `help:"API base URL (overrides settings)." env:"RESPIRA_API_URL" name:"api-url"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd     `cmd:"" help:"Initialize the local settings store."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Debugcmd system.DebugCmd    `cmd:"" name:"debug-info" help:"Show paths, versions, and configuration."`
	Login    session.LoginCmd   `cmd:"" help:"Store the API token in the OS keyring."`
	Logout   session.LogoutCmd  `cmd:"" help:"Clear the stored session."`
	Whoami   session.WhoamiCmd  `cmd:"" help:"Show session and API status."`
	Stats    cli.StatsCmd       `cmd:"" help:"Show program KPI overview."`
	Turnos   struct {
		List  turnos.ListCmd  `cmd:"" help:"List available turnos grouped by date." default:"1"`
		Count turnos.CountCmd `cmd:"" help:"Count available turnos for a month."`
		Purge turnos.PurgeCmd `cmd:"" help:"Bulk-delete a month's available turnos."`
	} `cmd:"" help:"Browse and manage turnos."`
	Citas struct {
		Agendar  citas.AgendarCmd  `cmd:"" help:"Book a turno for a patient."`
		Progreso citas.ProgresoCmd `cmd:"" help:"Show a patient's intervention session progress."`
	} `cmd:"" help:"Manage citas."`
	Pacientes  cli.PacientesCmd     `cmd:"" help:"List moderate-risk patients."`
	Terapeutas cli.TerapeutasCmd    `cmd:"" help:"List clinicians."`
	Usuarios   cli.UsuariosCmd      `cmd:"" help:"List dashboard accounts."`
	Tamizajes  cli.TamizajesCmd     `cmd:"" help:"Browse screening results."`
	Settings   settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("respira"),
		kong.Description("Terminal dashboard for the RESPIRA screening and intervention program"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store := sqlite.NewStore(CLI.Config)
	defer store.Close()

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	// Settings fall back to defaults when the store is not initialized yet,
	// so read-only commands work before 'respira init'.
	appSettings := models.Settings{
		APIURL:   constants.DefaultAPIURL,
		Timezone: "Local",
		PerPage:  constants.DefaultPerPage,
	}
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err == nil {
			if loaded, err := store.GetSettings(); err == nil && loaded.APIURL != "" {
				appSettings = loaded
			}
		}
	}
	if CLI.APIURL != "" {
		appSettings.APIURL = CLI.APIURL
	}

	client := api.New(api.Config{
		BaseURL: appSettings.APIURL,
		Token:   resolveToken,
		OnUnauthorized: func() {
			// Session teardown for the one-shot CLI path: drop the stored
			// token so the next command starts clean.
			_ = keyring.DeleteToken()
			fmt.Fprintln(os.Stderr, "Session expired. Run 'respira login' to authenticate again.")
		},
	})

	appCtx := &cli.Context{
		Store:    store,
		API:      client,
		Settings: appSettings,
		Debug:    CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// resolveToken prefers the environment over the keyring so CI and scripted
// use never touch the OS keyring.
func resolveToken() (string, error) {
	if token := os.Getenv("RESPIRA_TOKEN"); token != "" {
		return token, nil
	}
	return keyring.GetToken()
}
