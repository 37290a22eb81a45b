package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/submissions"
	"compliance-monitoring/internal/middleware"
	"compliance-monitoring/internal/ports/auth"
	"compliance-monitoring/internal/ports/roster"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service, subsSvc *submissions.Service, rosterProv roster.Provider) {
	r.Route("/events", func(er chi.Router) {
		er.Post("/", createEventHandler(svc, rosterProv))
		er.Get("/", listEventsHandler(svc))

		er.Route("/{eventID}", func(ev chi.Router) {
			ev.Get("/", getEventHandler(svc, subsSvc))
			ev.Get("/summary", eventSummaryHandler(svc, subsSvc))
			ev.Delete("/", deleteEventHandler(svc))

			submissions.RegisterRoutes(ev, subsSvc, svc)
		})
	})
}

// createEventRequest es el cuerpo para programar un nuevo evento de monitoreo.
type createEventRequest struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	Category        ServiceCategory `json:"category" enums:"CLEANING,SECURITY,CATERING,MAINTENANCE,GARDENING,PEST_CONTROL,WASTE_DISPOSAL"`
	RecurrenceLabel string          `json:"recurrence_label"`
}

// eventResponse representa un evento de monitoreo devuelto por la API.
type eventResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	Category        ServiceCategory `json:"category"`
	RecurrenceLabel string          `json:"recurrence_label"`
	CreatedAt       time.Time       `json:"created_at"`
}

// submissionResponse representa el registro de seguimiento de una sede.
type submissionResponse struct {
	EventID   string             `json:"event_id"`
	UnitID    string             `json:"unit_id"`
	Status    submissions.Status `json:"status"`
	Rating    *int               `json:"rating,omitempty"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// summaryResponse es el rollup de cobertura y satisfacción de un evento.
// rated_count permite distinguir average_rating=0 "sin datos" de una nota
// cero real.
type summaryResponse struct {
	Total         int     `json:"total"`
	Completed     int     `json:"completed"`
	Dispensed     int     `json:"dispensed"`
	RatedCount    int     `json:"rated_count"`
	Coverage      float64 `json:"coverage"`
	AverageRating float64 `json:"average_rating"`
}

// eventDetailResponse es la consulta completa que consume el generador de
// reportes: evento + lista por sede + rollup.
type eventDetailResponse struct {
	Event       eventResponse        `json:"event"`
	Submissions []submissionResponse `json:"submissions"`
	Summary     summaryResponse      `json:"summary"`
}

// createEventHandler godoc
// @Summary Programar evento de monitoreo
// @Description Crea un evento de control para la fecha y categoría indicadas y hace fan-out de una submission pending por cada sede del padrón vigente (todo o nada). Solo operadores. Fechas pasadas son válidas (regularización).
// @Tags events
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Datos del evento; date en formato YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / date inválida / categoría desconocida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 502 {string} string "roster unavailable"
// @Router /events [post]
func createEventHandler(svc *Service, rosterProv roster.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if claims.Role != auth.RoleOperator {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		// Snapshot del padrón al momento de crear: cambios posteriores no
		// tocan este evento.
		units, err := rosterProv.ListUnits(r.Context())
		if err != nil {
			http.Error(w, "roster unavailable", http.StatusBadGateway)
			return
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Date:            date,
			Category:        req.Category,
			RecurrenceLabel: req.RecurrenceLabel,
		}, units)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyRoster):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos del mes
// @Description Lista los eventos de monitoreo cuya fecha de vencimiento cae en el mes pedido, orden ascendente.
// @Tags events
// @Produce json
// @Param year query int true "Año (ej: 2026)"
// @Param month query int true "Mes 1-12"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "year/month inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		year, month, err := parseYearMonth(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByMonth(r.Context(), year, month)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Detalle de un evento
// @Description Devuelve el evento con su lista completa de submissions por sede y el rollup (la consulta estable que consume el generador de reportes).
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventDetailResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service, subsSvc *submissions.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		eventID := chi.URLParam(r, "eventID")
		e, err := svc.GetByID(r.Context(), eventID)
		if err != nil {
			writeEventLookupError(w, err)
			return
		}

		items, err := subsSvc.ListByEvent(r.Context(), eventID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		summary, err := subsSvc.Summarize(r.Context(), eventID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		subs := make([]submissionResponse, 0, len(items))
		for _, sub := range items {
			subs = append(subs, toSubmissionResponse(sub))
		}

		writeJSON(w, http.StatusOK, eventDetailResponse{
			Event:       toEventResponse(e),
			Submissions: subs,
			Summary:     toSummaryResponse(summary),
		})
	}
}

// eventSummaryHandler godoc
// @Summary Rollup de un evento
// @Description Cobertura (% de sedes resueltas) y nota promedio sobre las submissions cumplidas. Siempre derivado del estado actual; nunca persistido.
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/summary [get]
func eventSummaryHandler(svc *Service, subsSvc *submissions.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireClaims(w, r); !ok {
			return
		}

		eventID := chi.URLParam(r, "eventID")
		if _, err := svc.GetByID(r.Context(), eventID); err != nil {
			writeEventLookupError(w, err)
			return
		}

		summary, err := subsSvc.Summarize(r.Context(), eventID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toSummaryResponse(summary))
	}
}

// deleteEventHandler godoc
// @Summary Borrar un evento
// @Description Elimina el evento y arrastra todas sus submissions (cascada atómica). Solo operadores.
// @Tags events
// @Param eventID path string true "ID del evento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID} [delete]
func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		if claims.Role != auth.RoleOperator {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		eventID := chi.URLParam(r, "eventID")
		if err := svc.Delete(r.Context(), eventID); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "event not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeEventLookupError distingue "no existe" (404) de errores del store
// (5xx): un store caído no debe reportarse como evento inexistente.
func writeEventLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
		http.Error(w, "event not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func requireClaims(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	return claims, true
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("year")))
	if err != nil || year < 1 {
		return 0, 0, errors.New("year must be a positive integer")
	}
	m, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("month")))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, errors.New("month must be 1-12")
	}
	return year, time.Month(m), nil
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:              e.ID,
		Date:            e.Date.Format(dateLayout),
		Category:        e.Category,
		RecurrenceLabel: e.RecurrenceLabel,
		CreatedAt:       e.CreatedAt,
	}
}

func toSubmissionResponse(sub submissions.Submission) submissionResponse {
	return submissionResponse{
		EventID:   sub.EventID,
		UnitID:    sub.UnitID,
		Status:    sub.Status,
		Rating:    sub.Rating,
		UpdatedAt: sub.UpdatedAt,
	}
}

func toSummaryResponse(s submissions.Summary) summaryResponse {
	return summaryResponse{
		Total:         s.Total,
		Completed:     s.Completed,
		Dispensed:     s.Dispensed,
		RatedCount:    s.RatedCount,
		Coverage:      s.Coverage,
		AverageRating: s.AverageRating,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
