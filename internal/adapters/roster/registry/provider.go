package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"compliance-monitoring/internal/platform/httpclient"
	"compliance-monitoring/internal/ports/roster"
)

var (
	ErrRegistryNotConfigured = errors.New("registry client not configured")
	ErrRegistryUnauthorized  = errors.New("registry unauthorized")
	ErrRegistryUpstream      = errors.New("registry upstream error")
)

// Config del cliente del registro de sedes.
type Config struct {
	BaseURL string
	APIKey  string

	// Header de la API key; por defecto "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

// Provider implementa roster.Provider contra el servicio de registro de
// sedes de la autoridad. El core lo consulta solo al crear eventos; el
// padrón es responsabilidad del registro, no nuestra.
type Provider struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewProvider(cfg Config) (*Provider, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}

	return &Provider{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (p *Provider) IsConfigured() bool {
	return p != nil && p.http != nil && p.http.BaseURL != "" && p.apiKey != ""
}

func (p *Provider) ListUnits(ctx context.Context) ([]roster.Unit, error) {
	if !p.IsConfigured() {
		return nil, ErrRegistryNotConfigured
	}

	var out struct {
		Units []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"units"`
	}

	err := p.http.DoJSON(ctx, http.MethodGet, "/v1/units",
		map[string]string{p.apiKeyHeader: p.apiKey},
		nil,
		&out,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return nil, ErrRegistryUnauthorized
			}
			return nil, fmt.Errorf("%w: status=%d", ErrRegistryUpstream, httpErr.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrRegistryUpstream, err)
	}

	units := make([]roster.Unit, 0, len(out.Units))
	for _, u := range out.Units {
		id := strings.TrimSpace(u.ID)
		if id == "" {
			continue
		}
		units = append(units, roster.Unit{
			ID:   id,
			Name: strings.TrimSpace(u.Name),
		})
	}
	return units, nil
}
