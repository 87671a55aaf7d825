package fixtures

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEFAULT SHIFT TEMPLATES
// ==========================================

// GetDefaultShifts returns the standard operational shift patterns for one
// department. Shift templates are department-scoped while the holiday
// calendar is not; a single governmental calendar serves many shift patterns.
func GetDefaultShifts(department string) []overtime.ShiftInput {
	return []overtime.ShiftInput{
		{
			ID:         uuid.NewString(),
			Name:       "Standard Day",
			Department: department,
			StartTime:  "08:00",
			EndTime:    "15:00",
		},
		{
			ID:         uuid.NewString(),
			Name:       "Afternoon Shift",
			Department: department,
			StartTime:  "14:00",
			EndTime:    "22:00",
		},
		{
			ID:         uuid.NewString(),
			Name:       "Night Shift",
			Department: department,
			StartTime:  "22:00",
			EndTime:    "06:00", // clock-out on the next day
		},
	}
}

// ==========================================
// DEMO EMPLOYEES
// ==========================================

// GetDemoEmployees returns a small cross-department employee set.
func GetDemoEmployees() []overtime.EmployeeInput {
	return []overtime.EmployeeInput{
		{
			ID:         uuid.NewString(),
			Name:       "Huda Al-Sayed",
			Department: "Operations",
			Position:   strPtr("Shift Supervisor"),
		},
		{
			ID:         uuid.NewString(),
			Name:       "Omar Khalil",
			Department: "Operations",
			Position:   strPtr("Technician"),
		},
		{
			ID:         uuid.NewString(),
			Name:       "Rania Haddad",
			Department: "Administration",
			Position:   strPtr("Records Officer"),
		},
	}
}

// ==========================================
// CALENDAR DATA
// ==========================================

// GetDemoHolidays returns a governmental holiday calendar for 2025.
// Holidays apply uniformly to all departments.
func GetDemoHolidays() []overtime.HolidayInput {
	return []overtime.HolidayInput{
		{ID: uuid.NewString(), Name: "New Year's Day", Date: "2025-01-01"},
		{ID: uuid.NewString(), Name: "Isra and Miraj", Date: "2025-01-27"},
		{ID: uuid.NewString(), Name: "Eid al-Fitr", Date: "2025-03-31"},
		{ID: uuid.NewString(), Name: "Eid al-Fitr Holiday", Date: "2025-04-01"},
		{ID: uuid.NewString(), Name: "Eid al-Adha", Date: "2025-06-06"},
		{ID: uuid.NewString(), Name: "National Day", Date: "2025-12-02"},
	}
}

// GetDemoRamadanRange returns the 2025 Ramadan date range.
func GetDemoRamadanRange() overtime.RamadanRangeInput {
	return overtime.RamadanRangeInput{
		Year:      2025,
		StartDate: "2025-03-01",
		EndDate:   "2025-03-30",
	}
}

// ==========================================
// FULL DEMO DATASET
// ==========================================

// BuildDemoDataset assembles a complete input snapshot: the demo employees,
// the 2025 calendar, per-department shift templates, and one standard
// day-shift log per employee for each of the given YYYY-MM-DD dates.
func BuildDemoDataset(logDates []string) overtime.DatasetInput {
	employees := GetDemoEmployees()

	var shifts []overtime.ShiftInput
	shiftByDept := make(map[string]overtime.ShiftInput)
	for _, dept := range []string{"Operations", "Administration"} {
		deptShifts := GetDefaultShifts(dept)
		shifts = append(shifts, deptShifts...)
		shiftByDept[dept] = deptShifts[0]
	}

	var logs []overtime.TimeLogInput
	for _, emp := range employees {
		shift := shiftByDept[emp.Department]
		for i, date := range logDates {
			logs = append(logs, overtime.TimeLogInput{
				ID:         fmt.Sprintf("log-%s-%d", emp.ID, i),
				EmployeeID: emp.ID,
				Date:       date,
				ClockIn:    shift.StartTime,
				ClockOut:   shift.EndTime,
				ShiftID:    strPtr(shift.ID),
			})
		}
	}

	return overtime.DatasetInput{
		Employees:     employees,
		TimeLogs:      logs,
		Shifts:        shifts,
		Holidays:      GetDemoHolidays(),
		RamadanRanges: []overtime.RamadanRangeInput{GetDemoRamadanRange()},
	}
}
