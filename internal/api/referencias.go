package api

import (
	"context"
	"net/url"

	"github.com/respira-salud/respira-cli/internal/models"
)

// PacientesRiesgoModerado lists the patients eligible for the appointment
// flow (moderate-risk classification, computed server-side).
func (c *Client) PacientesRiesgoModerado(ctx context.Context) ([]models.Paciente, error) {
	var pacientes []models.Paciente
	if err := c.get(ctx, "/pacientes/riesgo-moderado", nil, &pacientes); err != nil {
		return nil, err
	}
	return pacientes, nil
}

// Terapeutas lists the clinicians offering turnos.
func (c *Client) Terapeutas(ctx context.Context) ([]models.Terapeuta, error) {
	var terapeutas []models.Terapeuta
	if err := c.get(ctx, "/terapeutas", nil, &terapeutas); err != nil {
		return nil, err
	}
	return terapeutas, nil
}

// Usuarios lists the dashboard accounts and their profiles.
func (c *Client) Usuarios(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := c.get(ctx, "/usuarios", nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Tamizajes lists screening results, optionally narrowed by the filter.
func (c *Client) Tamizajes(ctx context.Context, filtro models.TamizajeFiltro) ([]models.Tamizaje, error) {
	q := url.Values{}
	if filtro.Instrumento != "" {
		q.Set("instrumento", filtro.Instrumento)
	}
	if filtro.NivelRiesgo != "" {
		q.Set("nivel_riesgo", filtro.NivelRiesgo)
	}
	if filtro.Desde != "" {
		q.Set("desde", filtro.Desde)
	}
	if filtro.Hasta != "" {
		q.Set("hasta", filtro.Hasta)
	}
	var tamizajes []models.Tamizaje
	if err := c.get(ctx, "/tamizajes", q, &tamizajes); err != nil {
		return nil, err
	}
	return tamizajes, nil
}

// Estadisticas fetches the aggregate KPI counts for the dashboard panel.
func (c *Client) Estadisticas(ctx context.Context) (models.Estadisticas, error) {
	var est models.Estadisticas
	if err := c.get(ctx, "/estadisticas", nil, &est); err != nil {
		return models.Estadisticas{}, err
	}
	return est, nil
}
