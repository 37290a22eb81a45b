package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"compliance-monitoring/internal/middleware"
	"compliance-monitoring/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// DefaultBulkRating es la nota que aplica CompleteAll cuando el operador no
// manda una: la máxima.
const DefaultBulkRating = MaxRating

// EventChecker evita el ciclo de imports con el módulo de eventos: solo
// necesitamos saber si el evento existe antes de tocar sus submissions.
// *events.Service lo satisface.
type EventChecker interface {
	Exists(ctx context.Context, id string) error
}

// RegisterRoutes registra las rutas de submissions sobre el subrouter ya
// montado en /events/{eventID}, para que haya un único árbol bajo /events.
func RegisterRoutes(ev chi.Router, svc *Service, eventsSvc EventChecker) {
	ev.Route("/submissions/{unitID}", func(sr chi.Router) {
		sr.Post("/complete", completeHandler(svc, eventsSvc))
		sr.Post("/dispense", dispenseHandler(svc, eventsSvc))
		sr.Post("/revert", revertHandler(svc, eventsSvc))
		sr.Patch("/rating", updateRatingHandler(svc, eventsSvc))
	})

	// Transiciones masivas (solo operadores)
	ev.Post("/complete-all", completeAllHandler(svc, eventsSvc))
	ev.Post("/dispense-all", dispenseAllHandler(svc, eventsSvc))
}

// completeRequest lleva la nota de satisfacción al cumplir.
type completeRequest struct {
	Rating int `json:"rating" minimum:"0" maximum:"10"`
}

// completeAllRequest lleva la nota por defecto de la transición masiva.
// Si el body viene vacío se usa la nota máxima.
type completeAllRequest struct {
	Rating *int `json:"rating" minimum:"0" maximum:"10"`
}

type submissionResponse struct {
	EventID   string    `json:"event_id"`
	UnitID    string    `json:"unit_id"`
	Status    Status    `json:"status"`
	Rating    *int      `json:"rating,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// completeHandler godoc
// @Summary Marcar submission como cumplida
// @Description Marca la obligación de la sede como cumplida con nota 0-10. Operadores pueden marcar cualquier sede; reporters solo la propia. Si estaba dispensada, ese estado se descarta (son excluyentes).
// @Tags submissions
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param unitID path string true "ID de la sede"
// @Param payload body completeRequest true "Nota de satisfacción 0-10"
// @Success 200 {object} submissionResponse
// @Failure 400 {string} string "invalid json / rating fuera de rango"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found / submission not found"
// @Router /events/{eventID}/submissions/{unitID}/complete [post]
func completeHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, unitID, ok := submissionScope(w, r, eventsSvc)
		if !ok {
			return
		}

		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sub, err := svc.SetCompleted(r.Context(), eventID, unitID, req.Rating)
		if err != nil {
			writeSubmissionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sub))
	}
}

// dispenseHandler godoc
// @Summary Dispensar una submission
// @Description Exime a la sede de la obligación para este evento. La nota previa (si había) se descarta.
// @Tags submissions
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param unitID path string true "ID de la sede"
// @Success 200 {object} submissionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found / submission not found"
// @Router /events/{eventID}/submissions/{unitID}/dispense [post]
func dispenseHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, unitID, ok := submissionScope(w, r, eventsSvc)
		if !ok {
			return
		}

		sub, err := svc.SetDispensed(r.Context(), eventID, unitID)
		if err != nil {
			writeSubmissionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sub))
	}
}

// revertHandler godoc
// @Summary Revertir una submission a pending
// @Description Vuelve la submission a pendiente desde cumplida o dispensada; la nota se limpia. Siempre legal.
// @Tags submissions
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param unitID path string true "ID de la sede"
// @Success 200 {object} submissionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found / submission not found"
// @Router /events/{eventID}/submissions/{unitID}/revert [post]
func revertHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, unitID, ok := submissionScope(w, r, eventsSvc)
		if !ok {
			return
		}

		sub, err := svc.Revert(r.Context(), eventID, unitID)
		if err != nil {
			writeSubmissionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sub))
	}
}

// updateRatingHandler godoc
// @Summary Corregir la nota de una submission cumplida
// @Description Ajusta la nota 0-10 de una submission que ya está en completed. En cualquier otro estado responde 409.
// @Tags submissions
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param unitID path string true "ID de la sede"
// @Param payload body completeRequest true "Nueva nota 0-10"
// @Success 200 {object} submissionResponse
// @Failure 400 {string} string "invalid json / rating fuera de rango"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found / submission not found"
// @Failure 409 {string} string "la submission no está en completed"
// @Router /events/{eventID}/submissions/{unitID}/rating [patch]
func updateRatingHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, unitID, ok := submissionScope(w, r, eventsSvc)
		if !ok {
			return
		}

		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sub, err := svc.UpdateRating(r.Context(), eventID, unitID, req.Rating)
		if err != nil {
			writeSubmissionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(sub))
	}
}

// completeAllHandler godoc
// @Summary Cumplir todas las submissions del evento
// @Description Marca TODAS las submissions del evento como cumplidas con la nota indicada (default 10). Pisa notas individuales previas: es un override destructivo y se aplica de una, atómicamente. Solo operadores.
// @Tags submissions
// @Accept json
// @Produce json
// @Param eventID path string true "ID del evento"
// @Param payload body completeAllRequest false "Nota por defecto; si falta se usa 10"
// @Success 204 {string} string "sin contenido"
// @Failure 400 {string} string "rating fuera de rango"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/complete-all [post]
func completeAllHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := operatorEventScope(w, r, eventsSvc)
		if !ok {
			return
		}

		// Body vacío => nota por defecto. Body presente pero ilegible => 400:
		// un override masivo no se aplica sobre un pedido que no se entendió.
		rating := DefaultBulkRating
		var req completeAllRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if !errors.Is(err, io.EOF) {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		} else if req.Rating != nil {
			rating = *req.Rating
		}

		if err := svc.CompleteAll(r.Context(), eventID, rating); err != nil {
			writeSubmissionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dispenseAllHandler godoc
// @Summary Dispensar todas las submissions del evento
// @Description Dispensa TODAS las submissions del evento de una, atómicamente. Solo operadores.
// @Tags submissions
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 204 {string} string "sin contenido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "event not found"
// @Router /events/{eventID}/dispense-all [post]
func dispenseAllHandler(svc *Service, eventsSvc EventChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := operatorEventScope(w, r, eventsSvc)
		if !ok {
			return
		}

		if err := svc.DispenseAll(r.Context(), eventID); err != nil {
			writeSubmissionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// submissionScope valida claims, existencia del evento y permiso sobre la
// sede. Permisos:
// - Operador: cualquier submission.
// - Reporter: solo la submission de su propia sede.
func submissionScope(w http.ResponseWriter, r *http.Request, eventsSvc EventChecker) (eventID, unitID string, ok bool) {
	claims, okClaims := middleware.GetClaims(r.Context())
	if !okClaims || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	eventID = chi.URLParam(r, "eventID")
	unitID = chi.URLParam(r, "unitID")

	switch claims.Role {
	case auth.RoleOperator:
		// ok
	case auth.RoleReporter:
		if claims.UnitID == "" || claims.UnitID != unitID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return "", "", false
		}
	default:
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", "", false
	}

	// Evento existe (antes de tocar submissions, estilo 404 temprano)
	if err := eventsSvc.Exists(r.Context(), eventID); err != nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return "", "", false
	}

	return eventID, unitID, true
}

func operatorEventScope(w http.ResponseWriter, r *http.Request, eventsSvc EventChecker) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if claims.Role != auth.RoleOperator {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}

	eventID := chi.URLParam(r, "eventID")
	if err := eventsSvc.Exists(r.Context(), eventID); err != nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return "", false
	}
	return eventID, true
}

func writeSubmissionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRating), errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "submission not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(sub Submission) submissionResponse {
	return submissionResponse{
		EventID:   sub.EventID,
		UnitID:    sub.UnitID,
		Status:    sub.Status,
		Rating:    sub.Rating,
		UpdatedAt: sub.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
