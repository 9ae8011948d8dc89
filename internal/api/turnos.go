package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/respira-salud/respira-cli/internal/models"
)

// TurnosDisponibles fetches the raw available-slot list for a clinician.
// medicoID 0 fetches all clinicians.
func (c *Client) TurnosDisponibles(ctx context.Context, medicoID, perPage int) ([]models.Turno, error) {
	q := url.Values{}
	q.Set("estado", "disponible")
	q.Set("per_page", strconv.Itoa(perPage))
	if medicoID > 0 {
		q.Set("medico_id", strconv.Itoa(medicoID))
	}
	var turnos []models.Turno
	if err := c.get(ctx, "/turnos", q, &turnos); err != nil {
		return nil, err
	}
	return turnos, nil
}

// Calendario fetches a month's turnos plus aggregate per-status counts.
func (c *Client) Calendario(ctx context.Context, year, month, medicoID, pacienteID int) (models.CalendarioData, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	if medicoID > 0 {
		q.Set("medico_id", strconv.Itoa(medicoID))
	}
	if pacienteID > 0 {
		q.Set("paciente_id", strconv.Itoa(pacienteID))
	}
	var data models.CalendarioData
	if err := c.get(ctx, "/turnos/calendario", q, &data); err != nil {
		return models.CalendarioData{}, err
	}
	return data, nil
}

// ContarDisponibles counts the available turnos for a month and clinician.
func (c *Client) ContarDisponibles(ctx context.Context, year, month, medicoID int) (int, error) {
	q := monthQuery(year, month, medicoID)
	var data struct {
		Total int `json:"total"`
	}
	if err := c.get(ctx, "/turnos/contar-disponibles", q, &data); err != nil {
		return 0, err
	}
	return data.Total, nil
}

// EliminarTodos bulk-deletes the available turnos for a month and clinician.
// Returns the number of deleted slots.
func (c *Client) EliminarTodos(ctx context.Context, year, month, medicoID int) (int, error) {
	q := monthQuery(year, month, medicoID)
	var data struct {
		Eliminados int `json:"eliminados"`
	}
	if err := c.delete(ctx, "/turnos/eliminar-todos", q, &data); err != nil {
		return 0, err
	}
	return data.Eliminados, nil
}

func monthQuery(year, month, medicoID int) url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))
	if medicoID > 0 {
		q.Set("medico_id", strconv.Itoa(medicoID))
	}
	return q
}
