package attendance

// TimeLog is one clock-in/clock-out record. At most one log exists per
// (EmployeeID, Date); when dirty input violates that, the first log for the
// day wins downstream.
type TimeLog struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	ClockIn    string // HH:MM, may be empty
	ClockOut   string // HH:MM, may be empty
	ShiftID    *string
}
