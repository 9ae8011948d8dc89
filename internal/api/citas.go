package api

import (
	"context"
	"fmt"

	"github.com/respira-salud/respira-cli/internal/models"
)

// IntervencionSesion fetches where a patient stands in the intervention
// cycle. The session number is server-owned; SessionInIntervention is only a
// display fallback when the field is absent.
func (c *Client) IntervencionSesion(ctx context.Context, pacienteID int) (models.SesionProgreso, error) {
	var progreso models.SesionProgreso
	path := fmt.Sprintf("/citas/intervencion-sesion/%d", pacienteID)
	if err := c.get(ctx, path, nil, &progreso); err != nil {
		return models.SesionProgreso{}, err
	}
	return progreso, nil
}

// AgendarCita books a turno for a patient. No retry on failure: the caller
// surfaces the error and leaves prior state unchanged.
func (c *Client) AgendarCita(ctx context.Context, turnoID, pacienteID int) error {
	body := map[string]int{
		"turno_id":    turnoID,
		"paciente_id": pacienteID,
	}
	return c.post(ctx, "/citas/agendar", body, nil)
}
