package usuarios

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/respira-salud/respira-cli/internal/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
)

type Model struct {
	Usuarios []models.Usuario
	Loaded   bool
}

func New() Model {
	return Model{}
}

func (m *Model) SetUsuarios(usuarios []models.Usuario) {
	m.Usuarios = usuarios
	m.Loaded = true
}

func (m Model) View() string {
	if !m.Loaded {
		return "Loading usuarios..."
	}
	if len(m.Usuarios) == 0 {
		return "No usuarios found"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-25s %-30s %s", "ID", "NOMBRE", "CORREO", "PERFIL")) + "\n")
	for _, u := range m.Usuarios {
		line := fmt.Sprintf("%-5d %-25s %-30s %s", u.ID, u.NombreCompleto, u.Correo, u.Perfil)
		if !u.Activo.Bool() {
			line = inactiveStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
