package static

import (
	"context"
	"strings"

	"compliance-monitoring/internal/ports/roster"
)

// Provider es un roster fijo para dev y tests: la lista de sedes viene de
// configuración en vez del registro externo.
type Provider struct {
	units []roster.Unit
}

// NewProvider arma el roster desde listas paralelas de ids y nombres.
// Los nombres son opcionales; ids vacíos se descartan.
func NewProvider(ids, names []string) *Provider {
	units := make([]roster.Unit, 0, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		u := roster.Unit{ID: id}
		if i < len(names) {
			u.Name = strings.TrimSpace(names[i])
		}
		units = append(units, u)
	}
	return &Provider{units: units}
}

func NewProviderFromUnits(units []roster.Unit) *Provider {
	return &Provider{units: units}
}

func (p *Provider) ListUnits(ctx context.Context) ([]roster.Unit, error) {
	out := make([]roster.Unit, len(p.units))
	copy(out, p.units)
	return out, nil
}
