package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/respira-salud/respira-cli/internal/api"
	"github.com/respira-salud/respira-cli/internal/models"
	"github.com/respira-salud/respira-cli/internal/schedule"
	"github.com/respira-salud/respira-cli/internal/storage"
	"github.com/respira-salud/respira-cli/internal/utils"
)

type Context struct {
	Store    storage.Provider
	API      *api.Client
	Settings models.Settings
	Debug    bool
}

// Today returns today's calendar date in the configured timezone.
func (c *Context) Today() string {
	today, err := utils.GetTodayInTimezone(c.Settings.Timezone)
	if err != nil {
		return time.Now().Format("2006-01-02")
	}
	return today
}

// RequestContext returns the context used for one-shot CLI requests.
func (c *Context) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// PrintGrouped renders date-bucketed turnos in the shared list format.
func PrintGrouped(buckets []schedule.DayBucket) {
	for _, bucket := range buckets {
		fmt.Printf("%s\n", bucket.Fecha)
		for _, t := range bucket.Turnos {
			estado := "disponible"
			if schedule.IsBooked(t) {
				estado = fmt.Sprintf("ocupado por %s", t.Paciente)
			}
			fmt.Printf("  %s - %s (%dm) %s [%s]\n",
				utils.FormatHora(t.HoraInicio), utils.FormatHora(t.HoraFin),
				t.Duracion.Int(), t.Medico, estado)
		}
	}
}
