package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/submissions"
	"compliance-monitoring/internal/ports/roster"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyRoster  = errors.New("empty roster")
	ErrNotFound     = errors.New("not found")
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

type CreateInput struct {
	Date            time.Time
	Category        ServiceCategory
	RecurrenceLabel string
}

// Create persiste el evento junto con una submission pending por cada sede
// del roster (fan-out). El roster es un snapshot al momento de crear: altas
// o bajas posteriores de sedes no tocan eventos ya existentes.
//
// Fechas pasadas son válidas (programación de regularización).
func (s *Service) Create(ctx context.Context, in CreateInput, units []roster.Unit) (Event, error) {
	if in.Date.IsZero() {
		return Event{}, ErrInvalidInput
	}
	if !IsValidCategory(in.Category) {
		return Event{}, ErrInvalidInput
	}
	if len(units) == 0 {
		return Event{}, ErrEmptyRoster
	}

	now := s.now()

	e := Event{
		ID:              uuid.NewString(),
		Date:            in.Date,
		Category:        in.Category,
		RecurrenceLabel: strings.TrimSpace(in.RecurrenceLabel),
		CreatedAt:       now,
	}

	subs := make([]submissions.Submission, 0, len(units))
	for _, u := range units {
		if strings.TrimSpace(u.ID) == "" {
			return Event{}, ErrInvalidInput
		}
		subs = append(subs, submissions.Submission{
			EventID:   e.ID,
			UnitID:    u.ID,
			Status:    submissions.StatusPending,
			UpdatedAt: now,
		})
	}

	if err := s.repo.Create(ctx, e, subs); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Exists es el check barato de existencia que usan otros módulos antes de
// operar sobre las submissions de un evento.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.GetByID(ctx, id)
	return err
}

func (s *Service) ListByMonth(ctx context.Context, year int, month time.Month) ([]Event, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByMonth(ctx, year, month)
}

// Delete borra el evento con cascada a sus submissions.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
