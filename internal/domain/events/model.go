package events

import "time"

// Event es una instancia programada de control de cumplimiento: una
// categoría de servicio con fecha de vencimiento, aplicada a toda la red
// de sedes vigente al momento de crearla.
//
// Inmutable después de la creación; la única mutación permitida es el
// borrado, que arrastra todas sus submissions.
type Event struct {
	ID string

	// Date es la fecha de vencimiento del control (no la de creación).
	Date time.Time

	Category ServiceCategory

	// RecurrenceLabel es una etiqueta libre (mensual, semanal, puntual...).
	// Solo display: la recurrencia real la maneja el operador creando cada
	// evento de forma explícita.
	RecurrenceLabel string

	CreatedAt time.Time
}
