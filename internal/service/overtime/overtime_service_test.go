package overtime

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/engine"
	"github.com/dawam-hr/attendance-engine-go/internal/fixtures"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

func newTestService() overtime.Service {
	return NewOvertimeService(engine.Config{}, engine.TiebreakFirstMatch)
}

// One standard 7h day-shift log per employee on five June work days.
var demoLogDates = []string{
	"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
}

func TestOvertimeService_MonthlyReport(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	data := fixtures.BuildDemoDataset(demoLogDates)

	report, err := svc.GenerateMonthlyOvertimeReport(context.Background(), overtime.MonthlyReportRequest{
		Month: 6,
		Year:  2025,
		Data:  data,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, report.PeriodMonth)
	assert.Equal(t, "2025-06-01", report.PeriodStart)
	assert.Equal(t, "2025-06-30", report.PeriodEnd)
	assert.NotEmpty(t, report.GeneratedAt)
	require.Equal(t, 3, report.TotalEmployees)

	// June 2025 has 22 non-weekend days (the one holiday falls on a Friday),
	// so every demo employee is 154h required with 5 x 7h actually worked.
	for _, row := range report.Rows {
		assert.Equal(t, 154.0, row.TotalRequiredHours)
		assert.Equal(t, 35.0, row.TotalActualHours)
		assert.Equal(t, 0.0, row.TotalOvertimeHours)
		assert.Equal(t, 0, row.CompensatoryDaysDue)
	}
}

func TestOvertimeService_MonthlyReport_EmployeeFilter(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	data := fixtures.BuildDemoDataset(demoLogDates)

	report, err := svc.GenerateMonthlyOvertimeReport(context.Background(), overtime.MonthlyReportRequest{
		Month:      6,
		Year:       2025,
		EmployeeID: data.Employees[0].ID,
		Data:       data,
	})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, data.Employees[0].ID, report.Rows[0].EmployeeID)

	_, err = svc.GenerateMonthlyOvertimeReport(context.Background(), overtime.MonthlyReportRequest{
		Month:      6,
		Year:       2025,
		EmployeeID: "no-such-employee",
		Data:       data,
	})
	assert.ErrorIs(t, err, overtime.ErrEmployeeNotFound)
}

func TestOvertimeService_MonthlyReport_ValidationError(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	_, err := svc.GenerateMonthlyOvertimeReport(context.Background(), overtime.MonthlyReportRequest{
		Month: 13,
		Year:  2025,
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "month")
}

func TestOvertimeService_ShiftPrefill(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	shiftID := "shift-standard"
	data := overtime.DatasetInput{
		Employees: []overtime.EmployeeInput{
			{ID: "emp-1", Name: "Huda Al-Sayed", Department: "Operations"},
		},
		Shifts: []overtime.ShiftInput{
			{ID: shiftID, Name: "Standard Day", Department: "Operations", StartTime: "08:00", EndTime: "15:00"},
		},
		TimeLogs: []overtime.TimeLogInput{
			// No punches at all: both clock times come from the template.
			{ID: "t1", EmployeeID: "emp-1", Date: "2025-06-02", ShiftID: &shiftID},
			// Clock-in punched, clock-out pre-filled.
			{ID: "t2", EmployeeID: "emp-1", Date: "2025-06-03", ClockIn: "09:00", ShiftID: &shiftID},
			// Dangling shift reference: nothing to pre-fill from, zero hours.
			{ID: "t3", EmployeeID: "emp-1", Date: "2025-06-04", ShiftID: strPtr("no-such-shift")},
		},
	}

	report, err := svc.GenerateMonthlyOvertimeReport(context.Background(), overtime.MonthlyReportRequest{
		Month: 6,
		Year:  2025,
		Data:  data,
	})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	// 7h from the full template day plus 6h from 09:00 to the template 15:00.
	assert.Equal(t, 13.0, report.Rows[0].TotalActualHours)
}

func TestOvertimeService_DepartmentReport(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	data := fixtures.BuildDemoDataset(demoLogDates)

	report, err := svc.GenerateDepartmentOvertimeReport(context.Background(), overtime.DepartmentReportRequest{
		Month: 6,
		Year:  2025,
		Data:  data,
	})
	require.NoError(t, err)
	require.Len(t, report.Departments, 2)

	// Departments come back sorted.
	assert.Equal(t, "Administration", report.Departments[0].Department)
	assert.Equal(t, "Operations", report.Departments[1].Department)
	assert.Equal(t, 1, report.Departments[0].EmployeeCount)
	assert.Equal(t, 2, report.Departments[1].EmployeeCount)
	assert.Equal(t, 308.0, report.Departments[1].TotalRequiredHours)
	assert.Equal(t, 70.0, report.Departments[1].TotalActualHours)
	assert.InDelta(t, 22.73, report.Departments[1].AttendancePercentage, 0.001)
}

func TestOvertimeService_DepartmentReport_Filter(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	data := fixtures.BuildDemoDataset(demoLogDates)

	report, err := svc.GenerateDepartmentOvertimeReport(context.Background(), overtime.DepartmentReportRequest{
		Month:      6,
		Year:       2025,
		Department: "Operations",
		Data:       data,
	})
	require.NoError(t, err)
	require.Len(t, report.Departments, 1)
	assert.Equal(t, "Operations", report.Departments[0].Department)

	_, err = svc.GenerateDepartmentOvertimeReport(context.Background(), overtime.DepartmentReportRequest{
		Month:      6,
		Year:       2025,
		Department: "Facilities",
		Data:       data,
	})
	assert.ErrorIs(t, err, overtime.ErrDepartmentNotFound)
}

func TestOvertimeService_YearlyReport(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	data := fixtures.BuildDemoDataset(demoLogDates)

	report, err := svc.GenerateYearlyEntitlementReport(context.Background(), overtime.YearlyReportRequest{
		Year: 2025,
		Data: data,
	})
	require.NoError(t, err)
	assert.Equal(t, 2025, report.Year)
	require.Len(t, report.Rows, 3)

	for _, row := range report.Rows {
		require.Len(t, row.MonthlyCompensatoryDays, 12)
		// Five ordinary work days earn nothing anywhere in the year.
		assert.Equal(t, 0, row.TotalCompensatoryDays)
	}

	_, err = svc.GenerateYearlyEntitlementReport(context.Background(), overtime.YearlyReportRequest{
		Year:       2025,
		EmployeeID: "no-such-employee",
		Data:       data,
	})
	assert.ErrorIs(t, err, overtime.ErrEmployeeNotFound)
}

func strPtr(s string) *string { return &s }
