package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
)

type eventRepo struct {
	store *Store
}

func (r *eventRepo) Create(ctx context.Context, e events.Event, subs []submissions.Submission) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := s.events[e.ID]; exists {
		return errors.New("event already exists")
	}

	// Validar el lote completo antes de escribir nada: sin residuos si el
	// roster trae duplicados o claves vacías.
	seen := make(map[subKey]bool, len(subs))
	for _, sub := range subs {
		if sub.EventID != e.ID || sub.UnitID == "" {
			return errors.New("submission does not match event")
		}
		k := subKey{eventID: sub.EventID, unitID: sub.UnitID}
		if seen[k] {
			return errors.New("duplicate unit in roster")
		}
		seen[k] = true
	}

	s.events[e.ID] = e
	for _, sub := range subs {
		s.subs[subKey{eventID: sub.EventID, unitID: sub.UnitID}] = sub
	}
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]events.Event, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]events.Event, 0)
	for _, e := range s.events {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return events.ErrNotFound
	}

	delete(s.events, id)
	for k := range s.subs {
		if k.eventID == id {
			delete(s.subs, k)
		}
	}
	return nil
}
