package schedule

import (
	"context"
	"testing"
	"time"

	mem "compliance-monitoring/internal/adapters/storage/memory"
	"compliance-monitoring/internal/domain/events"
	"compliance-monitoring/internal/domain/submissions"
	"compliance-monitoring/internal/ports/roster"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Service, *events.Service, *submissions.Service) {
	t.Helper()

	store := mem.NewStore()
	eventsSvc := events.NewService(store.Events())
	subsSvc := submissions.NewService(store.Submissions())
	return NewService(eventsSvc, subsSvc), eventsSvc, subsSvc
}

func mustCreate(t *testing.T, svc *events.Service, date time.Time, category events.ServiceCategory, units ...string) events.Event {
	t.Helper()

	ros := make([]roster.Unit, 0, len(units))
	for _, u := range units {
		ros = append(ros, roster.Unit{ID: u})
	}
	e, err := svc.Create(context.Background(), events.CreateInput{
		Date:     date,
		Category: category,
	}, ros)
	require.NoError(t, err)
	return e
}

func TestService_EventsInMonth_GroupsByDayAscending(t *testing.T) {
	svc, eventsSvc, _ := setup(t)

	march := func(day int) time.Time {
		return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
	}

	mustCreate(t, eventsSvc, march(20), events.CategoryCleaning, "u1")
	mustCreate(t, eventsSvc, march(5), events.CategorySecurity, "u1")
	mustCreate(t, eventsSvc, march(20), events.CategoryCatering, "u1")
	// otro mes: no debe aparecer
	mustCreate(t, eventsSvc, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), events.CategoryCleaning, "u1")

	groups, err := svc.EventsInMonth(context.Background(), 2026, time.March)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, 5, groups[0].Day)
	require.Len(t, groups[0].Events, 1)
	require.Equal(t, 20, groups[1].Day)
	require.Len(t, groups[1].Events, 2)
}

func TestService_TasksForUnit_SortedWithOverdueFlag(t *testing.T) {
	svc, eventsSvc, subsSvc := setup(t)

	// "hoy" fijo a mitad de mes
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	past := mustCreate(t, eventsSvc, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), events.CategoryCleaning, "u1", "u2")
	future := mustCreate(t, eventsSvc, time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC), events.CategorySecurity, "u1", "u2")
	resolved := mustCreate(t, eventsSvc, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), events.CategoryCatering, "u1", "u2")

	_, err := subsSvc.SetCompleted(context.Background(), resolved.ID, "u1", 9)
	require.NoError(t, err)

	tasks, err := svc.TasksForUnit(context.Background(), "u1", 2026, time.March)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// orden por fecha ascendente
	require.Equal(t, resolved.ID, tasks[0].Event.ID)
	require.Equal(t, past.ID, tasks[1].Event.ID)
	require.Equal(t, future.ID, tasks[2].Event.ID)

	// cumplida vencida: no es overdue (overdue = pending + fecha pasada)
	require.False(t, tasks[0].Overdue)
	require.True(t, tasks[1].Overdue)
	require.False(t, tasks[2].Overdue)
}

func TestService_TasksForUnit_SameDateOrderIsDeterministic(t *testing.T) {
	svc, eventsSvc, _ := setup(t)

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	mustCreate(t, eventsSvc, date, events.CategoryCleaning, "u1")
	mustCreate(t, eventsSvc, date, events.CategorySecurity, "u1")
	mustCreate(t, eventsSvc, date, events.CategoryCatering, "u1")

	// el orden viene del store (fecha asc, id como desempate) y no cambia
	// entre lecturas
	listed, err := eventsSvc.ListByMonth(context.Background(), 2026, time.March)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	for attempt := 0; attempt < 3; attempt++ {
		tasks, err := svc.TasksForUnit(context.Background(), "u1", 2026, time.March)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		for i, task := range tasks {
			require.Equal(t, listed[i].ID, task.Event.ID)
		}
	}
}

func TestService_TasksForUnit_OnlyOwnSubmissions(t *testing.T) {
	svc, eventsSvc, _ := setup(t)

	e := mustCreate(t, eventsSvc, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), events.CategoryCleaning, "u1", "u2")

	tasks, err := svc.TasksForUnit(context.Background(), "u2", 2026, time.March)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, e.ID, tasks[0].Event.ID)
	require.Equal(t, "u2", tasks[0].Submission.UnitID)

	// sede que no estaba en el padrón del evento: sin tareas
	tasks, err = svc.TasksForUnit(context.Background(), "u3", 2026, time.March)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestService_TasksForUnit_EmptyMonth(t *testing.T) {
	svc, _, _ := setup(t)

	tasks, err := svc.TasksForUnit(context.Background(), "u1", 2026, time.December)
	require.NoError(t, err)
	require.Empty(t, tasks)

	_, err = svc.TasksForUnit(context.Background(), "  ", 2026, time.December)
	require.ErrorIs(t, err, ErrInvalidInput)
}
