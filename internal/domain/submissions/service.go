package submissions

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("invalid rating")
	ErrInvalidState  = errors.New("invalid state")
	ErrNotFound      = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// SetCompleted marca la submission como cumplida con su nota de satisfacción.
// Si estaba dispensada, el estado anterior se descarta (los estados son
// excluyentes, no hay flags acumulados).
func (s *Service) SetCompleted(ctx context.Context, eventID, unitID string, rating int) (Submission, error) {
	if rating < MinRating || rating > MaxRating {
		return Submission{}, ErrInvalidRating
	}

	sub, err := s.get(ctx, eventID, unitID)
	if err != nil {
		return Submission{}, err
	}

	sub.Status = StatusCompleted
	sub.Rating = &rating
	sub.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// SetDispensed marca la obligación como dispensada (eximida) para la sede.
func (s *Service) SetDispensed(ctx context.Context, eventID, unitID string) (Submission, error) {
	sub, err := s.get(ctx, eventID, unitID)
	if err != nil {
		return Submission{}, err
	}

	sub.Status = StatusDispensed
	sub.Rating = nil
	sub.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// Revert vuelve la submission a pending desde cualquier estado.
func (s *Service) Revert(ctx context.Context, eventID, unitID string) (Submission, error) {
	sub, err := s.get(ctx, eventID, unitID)
	if err != nil {
		return Submission{}, err
	}

	sub.Status = StatusPending
	sub.Rating = nil
	sub.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// UpdateRating corrige la nota de una submission ya cumplida.
// Fuera de completed no hay nota que corregir.
func (s *Service) UpdateRating(ctx context.Context, eventID, unitID string, rating int) (Submission, error) {
	if rating < MinRating || rating > MaxRating {
		return Submission{}, ErrInvalidRating
	}

	sub, err := s.get(ctx, eventID, unitID)
	if err != nil {
		return Submission{}, err
	}
	if sub.Status != StatusCompleted {
		return Submission{}, ErrInvalidState
	}

	sub.Rating = &rating
	sub.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// CompleteAll marca todas las submissions del evento como cumplidas con la
// nota por defecto. Pisa cualquier nota individual previa; el operador lo
// invoca ya advertido.
func (s *Service) CompleteAll(ctx context.Context, eventID string, defaultRating int) error {
	if defaultRating < MinRating || defaultRating > MaxRating {
		return ErrInvalidRating
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ErrInvalidInput
	}

	n, err := s.repo.UpdateAllByEvent(ctx, eventID, StatusCompleted, &defaultRating, s.now())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DispenseAll dispensa todas las submissions del evento.
func (s *Service) DispenseAll(ctx context.Context, eventID string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return ErrInvalidInput
	}

	n, err := s.repo.UpdateAllByEvent(ctx, eventID, StatusDispensed, nil, s.now())
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]Submission, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *Service) ListByUnitEvents(ctx context.Context, unitID string, eventIDs []string) ([]Submission, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, ErrInvalidInput
	}
	if len(eventIDs) == 0 {
		return []Submission{}, nil
	}
	return s.repo.ListByUnitEvents(ctx, unitID, eventIDs)
}

// Summary es el rollup de un evento: cobertura y nota promedio.
// AverageRating == 0 con RatedCount == 0 significa "sin datos", no "nota
// mínima"; el consumidor distingue con los contadores.
type Summary struct {
	Total      int
	Completed  int
	Dispensed  int
	RatedCount int

	Coverage      float64
	AverageRating float64
}

// Summarize calcula el rollup sobre el estado actual de las submissions.
// Nunca se persiste; siempre derivado en la lectura.
func (s *Service) Summarize(ctx context.Context, eventID string) (Summary, error) {
	items, err := s.ListByEvent(ctx, eventID)
	if err != nil {
		return Summary{}, err
	}

	out := Summary{Total: len(items)}

	sum := 0
	for _, it := range items {
		switch it.Status {
		case StatusCompleted:
			out.Completed++
			if it.Rating != nil {
				out.RatedCount++
				sum += *it.Rating
			}
		case StatusDispensed:
			out.Dispensed++
		}
	}

	if out.Total > 0 {
		out.Coverage = float64(out.Completed+out.Dispensed) / float64(out.Total) * 100
	}
	if out.RatedCount > 0 {
		out.AverageRating = float64(sum) / float64(out.RatedCount)
	}

	return out, nil
}

func (s *Service) get(ctx context.Context, eventID, unitID string) (Submission, error) {
	eventID = strings.TrimSpace(eventID)
	unitID = strings.TrimSpace(unitID)
	if eventID == "" || unitID == "" {
		return Submission{}, ErrInvalidInput
	}

	// El adapter devuelve ErrNotFound para pares inexistentes; cualquier
	// otro error del store pasa tal cual y el handler responde 5xx.
	sub, err := s.repo.Get(ctx, eventID, unitID)
	if err != nil {
		return Submission{}, err
	}
	return sub, nil
}
