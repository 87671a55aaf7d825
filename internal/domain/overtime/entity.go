package overtime

// Record is one employee's derived attendance/overtime result for a month.
// Records are recomputed on demand and never persisted by the engine.
type Record struct {
	EmployeeID   string
	EmployeeName string
	Department   string

	TotalRequiredHours float64
	TotalActualHours   float64
	TotalOvertimeHours float64

	// WorkDaysOnHolidays counts distinct weekend/holiday days the employee
	// actually worked. Days, not hours.
	WorkDaysOnHolidays  int
	CompensatoryDaysDue int
}

// DepartmentSummary aggregates Records across one department for a month.
type DepartmentSummary struct {
	Department    string
	EmployeeCount int

	TotalRequiredHours  float64
	TotalActualHours    float64
	TotalOvertimeHours  float64
	CompensatoryDaysDue int

	// AttendancePercentage is actual/required*100, 0 when required is 0.
	AttendancePercentage float64
}

// YearlyEntitlement is the per-month compensatory-day sequence for one
// employee over a calendar year. Months are resolved independently; a
// shortfall in one month never reduces another month's entitlement.
type YearlyEntitlement struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	Year         int

	// MonthlyCompensatoryDays is indexed January..December.
	MonthlyCompensatoryDays [12]int
	TotalCompensatoryDays   int
}
