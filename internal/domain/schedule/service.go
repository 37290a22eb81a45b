package schedule

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service proyecta eventos y submissions sobre un mes calendario.
// Sin caché: siempre se recalcula desde el estado actual de los stores.
type Service struct {
	events *events.Service
	subs   *submissions.Service
	now    func() time.Time
}

func NewService(eventsSvc *events.Service, subsSvc *submissions.Service) *Service {
	return &Service{
		events: eventsSvc,
		subs:   subsSvc,
		now:    time.Now,
	}
}

// DayGroup agrupa los eventos de un día del mes.
type DayGroup struct {
	Day    int
	Events []events.Event
}

// EventsInMonth agrupa por día los eventos del mes pedido, días ascendentes.
// Días sin eventos no aparecen.
func (s *Service) EventsInMonth(ctx context.Context, year int, month time.Month) ([]DayGroup, error) {
	items, err := s.events.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int][]events.Event)
	for _, e := range items {
		d := e.Date.Day()
		byDay[d] = append(byDay[d], e)
	}

	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]DayGroup, 0, len(days))
	for _, d := range days {
		out = append(out, DayGroup{Day: d, Events: byDay[d]})
	}
	return out, nil
}

// Task es la vista de una sede sobre un evento: el evento más su propia
// submission. Overdue es política de display recalculada contra "hoy",
// nunca un estado persistido.
type Task struct {
	Event      events.Event
	Submission submissions.Submission
	Overdue    bool
}

// TasksForUnit lista las tareas de una sede en el mes, por fecha ascendente.
func (s *Service) TasksForUnit(ctx context.Context, unitID string, year int, month time.Month) ([]Task, error) {
	unitID = strings.TrimSpace(unitID)
	if unitID == "" {
		return nil, ErrInvalidInput
	}

	evs, err := s.events.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return []Task{}, nil
	}

	ids := make([]string, 0, len(evs))
	for _, e := range evs {
		ids = append(ids, e.ID)
	}

	subs, err := s.subs.ListByUnitEvents(ctx, unitID, ids)
	if err != nil {
		return nil, err
	}

	byEvent := make(map[string]submissions.Submission, len(subs))
	for _, sub := range subs {
		byEvent[sub.EventID] = sub
	}

	today := truncateToDay(s.now())

	// El repo ya lista los eventos por fecha ascendente (id como desempate),
	// así que recorrerlos en orden alcanza; sin re-sort.
	out := make([]Task, 0, len(evs))
	for _, e := range evs {
		sub, ok := byEvent[e.ID]
		if !ok {
			// La sede no estaba en el padrón cuando se creó el evento.
			continue
		}
		out = append(out, Task{
			Event:      e,
			Submission: sub,
			Overdue:    sub.Status == submissions.StatusPending && truncateToDay(e.Date).Before(today),
		})
	}

	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
