package employee

type Employee struct {
	ID         string
	Name       string
	Department string

	// Optional profile data, not consulted by hour computation
	Position *string
	Email    *string
}
