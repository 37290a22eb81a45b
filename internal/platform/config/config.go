package config

import (
	"github.com/caarlos0/env/v11"
)

// Config concentra toda la configuración por entorno del servicio.
// Un solo Load al arrancar; nada de os.Getenv regado por el código.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"compliance-monitoring"`
	Port    string `env:"PORT" envDefault:"8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Si DBDSN está vacío, el servicio corre con el store in-memory (dev).
	DBDSN string `env:"DB_DSN"`

	// Registro de sedes (padrón). Sin BaseURL se usa el roster estático.
	RegistryBaseURL string `env:"REGISTRY_BASE_URL"`
	RegistryAPIKey  string `env:"REGISTRY_API_KEY"`

	// Proveedor de identidad. Sin BaseURL el middleware corre en modo dev
	// (headers X-Debug-*).
	AuthBaseURL string `env:"AUTH_BASE_URL"`
	AuthAPIKey  string `env:"AUTH_API_KEY"`

	// Roster estático para dev/handoff: ids y nombres paralelos.
	UnitIDs   []string `env:"UNIT_IDS" envSeparator:","`
	UnitNames []string `env:"UNIT_NAMES" envSeparator:","`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
