package cli

import "fmt"

type PacientesCmd struct{}

func (c *PacientesCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	pacientes, err := ctx.API.PacientesRiesgoModerado(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch pacientes: %w", err)
	}
	if len(pacientes) == 0 {
		fmt.Println("No moderate-risk patients found")
		return nil
	}
	fmt.Println("Pacientes (riesgo moderado):")
	for _, p := range pacientes {
		fmt.Printf("  %5d  %-12s %s\n", p.ID, p.NumeroRegistro, p.NombreCompleto)
	}
	return nil
}

type TerapeutasCmd struct{}

func (c *TerapeutasCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	terapeutas, err := ctx.API.Terapeutas(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch terapeutas: %w", err)
	}
	if len(terapeutas) == 0 {
		fmt.Println("No terapeutas found")
		return nil
	}
	fmt.Println("Terapeutas:")
	for _, t := range terapeutas {
		fmt.Printf("  %5d  %s\n", t.ID, t.NombreCompleto)
	}
	return nil
}

type UsuariosCmd struct{}

func (c *UsuariosCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	usuarios, err := ctx.API.Usuarios(reqCtx)
	if err != nil {
		return fmt.Errorf("failed to fetch usuarios: %w", err)
	}
	fmt.Println("Usuarios:")
	for _, u := range usuarios {
		estado := "activo"
		if !u.Activo.Bool() {
			estado = "inactivo"
		}
		fmt.Printf("  %5d  %-25s %-12s [%s]\n", u.ID, u.NombreCompleto, u.Perfil, estado)
	}
	return nil
}
