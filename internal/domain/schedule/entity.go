package schedule

// Shift is a named clock-time template. Shifts are department-scoped (many
// operational patterns) while the holiday calendar is department-agnostic
// (single governmental calendar); that asymmetry is intentional.
//
// A shift is only used to pre-fill a TimeLog's clock times. The computation
// engine always reads the TimeLog's own times, never the template.
type Shift struct {
	ID         string
	Name       string
	Department string
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}
