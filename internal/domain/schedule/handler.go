package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
	"compliance-monitoring/internal/middleware"
	"compliance-monitoring/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/calendar", calendarHandler(svc))
	r.Get("/me/tasks", myTasksHandler(svc))
}

type calendarEvent struct {
	ID              string                 `json:"id"`
	Date            string                 `json:"date"`
	Category        events.ServiceCategory `json:"category"`
	RecurrenceLabel string                 `json:"recurrence_label"`
}

// dayGroupResponse agrupa los eventos de un día del mes.
type dayGroupResponse struct {
	Day    int             `json:"day"`
	Events []calendarEvent `json:"events"`
}

// taskResponse es una fila de la lista de tareas de una sede: el evento más
// el estado propio. overdue se recalcula contra "hoy" en cada lectura.
type taskResponse struct {
	Event     calendarEvent      `json:"event"`
	Status    submissions.Status `json:"status"`
	Rating    *int               `json:"rating,omitempty"`
	Overdue   bool               `json:"overdue"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// calendarHandler godoc
// @Summary Vista calendario del mes
// @Description Agrupa por día los eventos de monitoreo del mes pedido, días ascendentes. Días sin eventos no aparecen.
// @Tags schedule
// @Produce json
// @Param year query int true "Año (ej: 2026)"
// @Param month query int true "Mes 1-12"
// @Success 200 {array} dayGroupResponse
// @Failure 400 {string} string "year/month inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		year, month, err := parseYearMonth(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		groups, err := svc.EventsInMonth(r.Context(), year, month)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dayGroupResponse, 0, len(groups))
		for _, g := range groups {
			evs := make([]calendarEvent, 0, len(g.Events))
			for _, e := range g.Events {
				evs = append(evs, toCalendarEvent(e))
			}
			out = append(out, dayGroupResponse{Day: g.Day, Events: evs})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// myTasksHandler godoc
// @Summary Tareas del mes para una sede
// @Description Lista (Event, Submission) del mes por fecha ascendente. Reporters ven su propia sede; operadores pueden inspeccionar cualquiera con ?unit_id=. Las pendientes con fecha vencida vienen con overdue=true (política de display, no estado persistido).
// @Tags schedule
// @Produce json
// @Param year query int true "Año (ej: 2026)"
// @Param month query int true "Mes 1-12"
// @Param unit_id query string false "Solo operadores: sede a inspeccionar"
// @Success 200 {array} taskResponse
// @Failure 400 {string} string "year/month inválidos / falta unit_id"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /me/tasks [get]
func myTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		year, month, err := parseYearMonth(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		unitID := claims.UnitID
		if q := strings.TrimSpace(r.URL.Query().Get("unit_id")); q != "" {
			if claims.Role != auth.RoleOperator {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			unitID = q
		}
		if unitID == "" {
			http.Error(w, "unit_id required", http.StatusBadRequest)
			return
		}

		tasks, err := svc.TasksForUnit(r.Context(), unitID, year, month)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]taskResponse, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, taskResponse{
				Event:     toCalendarEvent(t.Event),
				Status:    t.Submission.Status,
				Rating:    t.Submission.Rating,
				Overdue:   t.Overdue,
				UpdatedAt: t.Submission.UpdatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
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

func toCalendarEvent(e events.Event) calendarEvent {
	return calendarEvent{
		ID:              e.ID,
		Date:            e.Date.Format(dateLayout),
		Category:        e.Category,
		RecurrenceLabel: e.RecurrenceLabel,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
