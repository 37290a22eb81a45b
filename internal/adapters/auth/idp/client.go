package idp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"compliance-monitoring/internal/platform/httpclient"
	"compliance-monitoring/internal/ports/auth"
)

var (
	ErrIdpNotConfigured = errors.New("idp client not configured")
	ErrIdpUnauthorized  = errors.New("idp unauthorized")
	ErrIdpUpstream      = errors.New("idp upstream error")
)

// Config del cliente del proveedor de identidad de la autoridad regional.
// BaseURL y APIKey vienen de env en quien lo instancie.
type Config struct {
	BaseURL string
	APIKey  string

	// Header de la API key; por defecto "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewClient(cfg Config) (*Client, error) {
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

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// VerifyToken valida un token contra el IdP y trae los claims con rol y sede.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrIdpNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrIdpUnauthorized
	}

	var out struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		UnitID string `json:"unit_id"`
		Email  string `json:"email"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/tokens/verify",
		map[string]string{
			c.apiKeyHeader:  c.apiKey,
			"Authorization": "Bearer " + token,
		},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrIdpUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrIdpUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrIdpUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("idp response missing user_id")
	}

	return auth.Claims{
		UserID: out.UserID,
		Role:   auth.Role(strings.TrimSpace(out.Role)),
		UnitID: strings.TrimSpace(out.UnitID),
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
