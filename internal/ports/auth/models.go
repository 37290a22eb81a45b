package auth

// Role clasifica al caller frente al core.
type Role string

const (
	// RoleOperator es el personal de la autoridad regional: crea/borra
	// eventos y aplica transiciones masivas.
	RoleOperator Role = "operator"

	// RoleReporter reporta por una sede: solo muta la submission de su
	// propia sede.
	RoleReporter Role = "reporter"
)

// Claims representa la información extraída del token.
// UnitID solo viene poblado para reporters.
type Claims struct {
	UserID string
	Role   Role
	UnitID string
	Email  string
}
