package main

import (
	"log"
	"net/http"
	"time"

	_ "compliance-monitoring/docs"
	"compliance-monitoring/internal/adapters/auth/idp"
	"compliance-monitoring/internal/adapters/roster/registry"
	"compliance-monitoring/internal/adapters/roster/static"
	pg "compliance-monitoring/internal/adapters/storage/postgres"
	"compliance-monitoring/internal/platform/config"
	"compliance-monitoring/internal/platform/logger"
	"compliance-monitoring/internal/ports/auth"
	"compliance-monitoring/internal/ports/roster"
	"compliance-monitoring/internal/router"
)

// @title Compliance Monitoring API
// @version 1.0
// @description Motor de eventos de monitoreo y submissions por sede para la autoridad regional: fan-out por padrón, ciclo pending/completed/dispensed, transiciones masivas y rollups de cobertura y satisfacción.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{Logger: appLog}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			appLog.Error("postgres open failed", map[string]any{"error": err.Error()})
			log.Fatalf("postgres open failed: %v", err)
		}
		defer db.Close()
		opts.DB = db
		appLog.Info("storage: postgres", nil)
	} else {
		appLog.Warn("storage: in-memory (DB_DSN not set)", nil)
	}

	opts.Roster = buildRoster(cfg, appLog)
	opts.AuthVerifier = buildVerifier(cfg, appLog)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLog.Error("server error", map[string]any{"error": err.Error()})
		log.Fatalf("server error: %v", err)
	}
}

func buildRoster(cfg config.Config, appLog logger.Logger) roster.Provider {
	if cfg.RegistryBaseURL != "" {
		prov, err := registry.NewProvider(registry.Config{
			BaseURL: cfg.RegistryBaseURL,
			APIKey:  cfg.RegistryAPIKey,
		})
		if err != nil {
			appLog.Error("registry provider init failed", map[string]any{"error": err.Error()})
			log.Fatalf("registry provider init failed: %v", err)
		}
		appLog.Info("roster: registry", map[string]any{"base_url": cfg.RegistryBaseURL})
		return prov
	}

	appLog.Warn("roster: static (REGISTRY_BASE_URL not set)", map[string]any{"units": len(cfg.UnitIDs)})
	return static.NewProvider(cfg.UnitIDs, cfg.UnitNames)
}

func buildVerifier(cfg config.Config, appLog logger.Logger) auth.AuthVerifier {
	if cfg.AuthBaseURL == "" {
		appLog.Warn("auth: dev mode (AUTH_BASE_URL not set)", nil)
		return nil
	}

	client, err := idp.NewClient(idp.Config{
		BaseURL: cfg.AuthBaseURL,
		APIKey:  cfg.AuthAPIKey,
	})
	if err != nil {
		appLog.Error("idp client init failed", map[string]any{"error": err.Error()})
		log.Fatalf("idp client init failed: %v", err)
	}
	appLog.Info("auth: idp verifier", map[string]any{"base_url": cfg.AuthBaseURL})
	return idp.NewVerifier(client)
}
