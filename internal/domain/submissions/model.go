package submissions

import "time"

// Status es el estado de rendición de una sede frente a un evento.
// Un solo enum (no dos booleanos): completed y dispensed son excluyentes
// por construcción.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusDispensed Status = "dispensed"
)

const (
	MinRating = 0
	MaxRating = 10
)

// Submission es el registro de seguimiento de una sede (unit) contra un
// evento de monitoreo. Identidad compuesta: (EventID, UnitID).
// Rating solo tiene valor cuando Status == completed; en cualquier otro
// estado es nil.
type Submission struct {
	EventID string
	UnitID  string

	Status Status
	Rating *int

	UpdatedAt time.Time
}

// Resolved indica si la submission ya salió de pending (cumplida o dispensada).
func (s Submission) Resolved() bool {
	return s.Status == StatusCompleted || s.Status == StatusDispensed
}
