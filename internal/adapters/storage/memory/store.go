package memory

import (
	"sync"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
)

type subKey struct {
	eventID string
	unitID  string
}

// Store guarda eventos y submissions bajo un mismo mutex, de modo que el
// fan-out, las transiciones masivas y la cascada de borrado sean una sola
// sección crítica (el equivalente in-memory de la transacción de Postgres).
type Store struct {
	mu     sync.RWMutex
	events map[string]events.Event
	subs   map[subKey]submissions.Submission
}

func NewStore() *Store {
	return &Store{
		events: make(map[string]events.Event),
		subs:   make(map[subKey]submissions.Submission),
	}
}

func (s *Store) Events() events.Repository {
	return &eventRepo{store: s}
}

func (s *Store) Submissions() submissions.Repository {
	return &submissionRepo{store: s}
}
