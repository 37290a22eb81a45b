package events

import (
	"context"
	"time"

	"compliance-monitoring/internal/domain/submissions"
)

type Repository interface {
	// Create persiste el evento y todas sus submissions como una sola unidad
	// de trabajo: o queda todo, o no queda nada. Los lectores nunca observan
	// un evento con fan-out a medias.
	Create(ctx context.Context, e Event, subs []submissions.Submission) error

	GetByID(ctx context.Context, id string) (Event, error)

	// ListByMonth devuelve los eventos cuyo Date cae dentro del mes indicado,
	// ordenados por fecha ascendente con el id como desempate (orden estable
	// del que dependen las proyecciones de calendario y tareas).
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Event, error)

	// Delete borra el evento y arrastra sus submissions, atómicamente.
	Delete(ctx context.Context, id string) error
}
