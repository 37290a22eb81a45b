package memory

import (
	"context"
	"testing"
	"time"

	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"

	"github.com/stretchr/testify/require"
)

func testEvent(id string, day int) events.Event {
	return events.Event{
		ID:       id,
		Date:     time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		Category: events.CategoryCleaning,
	}
}

func pendingSubs(eventID string, units ...string) []submissions.Submission {
	out := make([]submissions.Submission, 0, len(units))
	for _, u := range units {
		out = append(out, submissions.Submission{
			EventID: eventID,
			UnitID:  u,
			Status:  submissions.StatusPending,
		})
	}
	return out
}

func TestEventRepo_Create_BadBatch_LeavesNoResidue(t *testing.T) {
	store := NewStore()
	repo := store.Events()
	ctx := context.Background()

	// roster con sede duplicada: el lote entero se rechaza
	err := repo.Create(ctx, testEvent("ev-1", 10), pendingSubs("ev-1", "u1", "u2", "u1"))
	require.Error(t, err)

	_, err = repo.GetByID(ctx, "ev-1")
	require.ErrorIs(t, err, events.ErrNotFound)

	subs, err := store.Submissions().ListByEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Empty(t, subs)
}

func TestEventRepo_Delete_CascadesToSubmissions(t *testing.T) {
	store := NewStore()
	repo := store.Events()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testEvent("ev-1", 10), pendingSubs("ev-1", "u1", "u2")))
	require.NoError(t, repo.Create(ctx, testEvent("ev-2", 11), pendingSubs("ev-2", "u1")))

	require.NoError(t, repo.Delete(ctx, "ev-1"))

	subs, err := store.Submissions().ListByEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Empty(t, subs)

	// el otro evento no se toca
	subs, err = store.Submissions().ListByEvent(ctx, "ev-2")
	require.NoError(t, err)
	require.Len(t, subs, 1)

	require.ErrorIs(t, repo.Delete(ctx, "ev-1"), events.ErrNotFound)
}

func TestRepos_UnknownIDs_ReturnDomainSentinels(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// Los repos hablan los sentinels del dominio: los handlers los mapean
	// con errors.Is, nunca mirando el texto del error.
	_, err := store.Events().GetByID(ctx, "ev-x")
	require.ErrorIs(t, err, events.ErrNotFound)

	require.ErrorIs(t, store.Events().Delete(ctx, "ev-x"), events.ErrNotFound)

	_, err = store.Submissions().Get(ctx, "ev-x", "u-x")
	require.ErrorIs(t, err, submissions.ErrNotFound)

	err = store.Submissions().Update(ctx, submissions.Submission{EventID: "ev-x", UnitID: "u-x"})
	require.ErrorIs(t, err, submissions.ErrNotFound)
}

func TestEventRepo_ListByMonth_SortedByDate(t *testing.T) {
	store := NewStore()
	repo := store.Events()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testEvent("ev-b", 20), pendingSubs("ev-b", "u1")))
	require.NoError(t, repo.Create(ctx, testEvent("ev-a", 5), pendingSubs("ev-a", "u1")))

	out, err := repo.ListByMonth(ctx, 2026, time.March)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "ev-a", out[0].ID)
	require.Equal(t, "ev-b", out[1].ID)

	out, err = repo.ListByMonth(ctx, 2026, time.April)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSubmissionRepo_UpdateAllByEvent_CountsRows(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Events().Create(ctx, testEvent("ev-1", 10), pendingSubs("ev-1", "u1", "u2", "u3")))

	rating := 10
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	n, err := store.Submissions().UpdateAllByEvent(ctx, "ev-1", submissions.StatusCompleted, &rating, now)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	subs, err := store.Submissions().ListByEvent(ctx, "ev-1")
	require.NoError(t, err)
	for _, sub := range subs {
		require.Equal(t, submissions.StatusCompleted, sub.Status)
		require.Equal(t, 10, *sub.Rating)
		require.Equal(t, now, sub.UpdatedAt)
	}

	n, err = store.Submissions().UpdateAllByEvent(ctx, "ev-x", submissions.StatusDispensed, nil, now)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSubmissionRepo_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Events().Create(ctx, testEvent("ev-1", 10), pendingSubs("ev-1", "u1")))

	rating := 5
	now := time.Now()
	_, err := store.Submissions().UpdateAllByEvent(ctx, "ev-1", submissions.StatusCompleted, &rating, now)
	require.NoError(t, err)

	sub, err := store.Submissions().Get(ctx, "ev-1", "u1")
	require.NoError(t, err)

	// mutar la copia no debe tocar el store
	*sub.Rating = 1

	again, err := store.Submissions().Get(ctx, "ev-1", "u1")
	require.NoError(t, err)
	require.Equal(t, 5, *again.Rating)
}
