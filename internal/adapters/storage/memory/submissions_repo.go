package memory

import (
	"context"
	"sort"
	"time"

	"compliance-monitoring/internal/domain/submissions"
)

type submissionRepo struct {
	store *Store
}

func (r *submissionRepo) Get(ctx context.Context, eventID, unitID string) (submissions.Submission, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[subKey{eventID: eventID, unitID: unitID}]
	if !ok {
		return submissions.Submission{}, submissions.ErrNotFound
	}
	return cloneSub(sub), nil
}

func (r *submissionRepo) Update(ctx context.Context, sub submissions.Submission) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	k := subKey{eventID: sub.EventID, unitID: sub.UnitID}
	if _, ok := s.subs[k]; !ok {
		return submissions.ErrNotFound
	}
	s.subs[k] = cloneSub(sub)
	return nil
}

func (r *submissionRepo) ListByEvent(ctx context.Context, eventID string) ([]submissions.Submission, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]submissions.Submission, 0)
	for k, sub := range s.subs {
		if k.eventID == eventID {
			out = append(out, cloneSub(sub))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UnitID < out[j].UnitID
	})

	return out, nil
}

func (r *submissionRepo) ListByUnitEvents(ctx context.Context, unitID string, eventIDs []string) ([]submissions.Submission, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = true
	}

	out := make([]submissions.Submission, 0)
	for k, sub := range s.subs {
		if k.unitID == unitID && wanted[k.eventID] {
			out = append(out, cloneSub(sub))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].EventID < out[j].EventID
	})

	return out, nil
}

func (r *submissionRepo) UpdateAllByEvent(ctx context.Context, eventID string, status submissions.Status, rating *int, updatedAt time.Time) (int, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for k, sub := range s.subs {
		if k.eventID != eventID {
			continue
		}
		sub.Status = status
		if rating != nil {
			v := *rating
			sub.Rating = &v
		} else {
			sub.Rating = nil
		}
		sub.UpdatedAt = updatedAt
		s.subs[k] = sub
		n++
	}

	return n, nil
}

// cloneSub copia el puntero de rating para que los callers no muten el
// estado interno del store por alias.
func cloneSub(sub submissions.Submission) submissions.Submission {
	if sub.Rating != nil {
		v := *sub.Rating
		sub.Rating = &v
	}
	return sub
}
