package router

import (
	"database/sql"
	"net/http"

	mem "compliance-monitoring/internal/adapters/storage/memory"
	pg "compliance-monitoring/internal/adapters/storage/postgres"
	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/schedule"
	"compliance-monitoring/internal/domain/submissions"
	"compliance-monitoring/internal/middleware"
	"compliance-monitoring/internal/platform/logger"
	"compliance-monitoring/internal/ports/auth"
	"compliance-monitoring/internal/ports/roster"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: headers X-Debug-*)

	// Padrón de sedes. Obligatorio: sin roster no hay fan-out.
	Roster roster.Provider

	// Opcional: si viene, usa Postgres. Si no, store in-memory.
	DB *sql.DB

	// Opcional: logger para la línea por request.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		eventRepo events.Repository
		subRepo   submissions.Repository
	)

	if opts.DB != nil {
		eventRepo = pg.NewEventsRepo(opts.DB)
		subRepo = pg.NewSubmissionsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		eventRepo = store.Events()
		subRepo = store.Submissions()
	}

	// Services por módulo
	eventsSvc := events.NewService(eventRepo)
	subsSvc := submissions.NewService(subRepo)
	scheduleSvc := schedule.NewService(eventsSvc, subsSvc)

	// Rutas por módulo (events registra también las de submissions bajo
	// /events/{eventID} para que exista un único mount en /events)
	events.RegisterRoutes(r, eventsSvc, subsSvc, opts.Roster)
	schedule.RegisterRoutes(r, scheduleSvc)

	return r
}
