package roster

import "context"

// Unit es una sede de la red. El core solo conoce su identidad; el padrón
// vive en el registro externo.
type Unit struct {
	ID   string
	Name string
}

// Provider entrega el padrón vigente de sedes. El core lo consulta una sola
// vez por creación de evento (snapshot): cambios posteriores del padrón no
// alteran eventos existentes.
type Provider interface {
	ListUnits(ctx context.Context) ([]Unit, error)
}
