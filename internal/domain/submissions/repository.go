package submissions

import (
	"context"
	"time"
)

type Repository interface {
	Get(ctx context.Context, eventID, unitID string) (Submission, error)
	Update(ctx context.Context, s Submission) error
	ListByEvent(ctx context.Context, eventID string) ([]Submission, error)

	// ListByUnitEvents devuelve las submissions de una sede restringidas a un
	// conjunto de eventos (las del mes visible, típicamente).
	ListByUnitEvents(ctx context.Context, unitID string, eventIDs []string) ([]Submission, error)

	// UpdateAllByEvent aplica el mismo estado/rating a todas las submissions
	// del evento en una sola operación atómica. Devuelve cuántas filas tocó.
	UpdateAllByEvent(ctx context.Context, eventID string, status Status, rating *int, updatedAt time.Time) (int, error)
}
