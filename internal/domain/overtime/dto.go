package overtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/calendar"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/employee"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/leave"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/schedule"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// INPUT SNAPSHOT
// ========================================

// DatasetInput is the full input snapshot for one computation pass, supplied
// by the external persistence/sync collaborator. The engine never stores it;
// every request carries a fresh copy.
type DatasetInput struct {
	Employees     []EmployeeInput     `json:"employees"`
	TimeLogs      []TimeLogInput      `json:"time_logs"`
	Shifts        []ShiftInput        `json:"shifts"`
	Holidays      []HolidayInput      `json:"holidays"`
	LeaveRequests []LeaveRequestInput `json:"leave_requests"`
	RamadanRanges []RamadanRangeInput `json:"ramadan_ranges"`
}

type EmployeeInput struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   *string `json:"position,omitempty"`
	Email      *string `json:"email,omitempty"`
}

func (e EmployeeInput) ToEntity() employee.Employee {
	return employee.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
		Email:      e.Email,
	}
}

type TimeLogInput struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	ShiftID    *string `json:"shift_id,omitempty"`
}

func (t TimeLogInput) ToEntity() attendance.TimeLog {
	return attendance.TimeLog{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Date:       t.Date,
		ClockIn:    t.ClockIn,
		ClockOut:   t.ClockOut,
		ShiftID:    t.ShiftID,
	}
}

type ShiftInput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (s ShiftInput) ToEntity() schedule.Shift {
	return schedule.Shift{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

type HolidayInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func (h HolidayInput) ToEntity() calendar.PublicHoliday {
	return calendar.PublicHoliday{
		ID:   h.ID,
		Name: h.Name,
		Date: h.Date,
	}
}

type LeaveRequestInput struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

func (l LeaveRequestInput) ToEntity() leave.Request {
	return leave.Request{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		Status:     leave.RequestStatus(strings.ToLower(l.Status)),
	}
}

type RamadanRangeInput struct {
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r RamadanRangeInput) ToEntity() calendar.RamadanRange {
	return calendar.RamadanRange{
		Year:      r.Year,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ========================================
// MONTHLY OVERTIME REPORT
// ========================================

type MonthlyReportRequest struct {
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	EmployeeID string       `json:"employee_id,omitempty"`
	Data       DatasetInput `json:"data"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	TotalEmployees int           `json:"total_employees"`
	Rows           []OvertimeRow `json:"rows"`
}

type OvertimeRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`

	TotalRequiredHours  float64 `json:"total_required_hours"`
	TotalActualHours    float64 `json:"total_actual_hours"`
	TotalOvertimeHours  float64 `json:"total_overtime_hours"`
	WorkDaysOnHolidays  int     `json:"work_days_on_holidays"`
	CompensatoryDaysDue int     `json:"compensatory_days_due"`
}

func OvertimeRowFromRecord(rec Record) OvertimeRow {
	return OvertimeRow{
		EmployeeID:          rec.EmployeeID,
		EmployeeName:        rec.EmployeeName,
		Department:          rec.Department,
		TotalRequiredHours:  rec.TotalRequiredHours,
		TotalActualHours:    rec.TotalActualHours,
		TotalOvertimeHours:  rec.TotalOvertimeHours,
		WorkDaysOnHolidays:  rec.WorkDaysOnHolidays,
		CompensatoryDaysDue: rec.CompensatoryDaysDue,
	}
}

// ========================================
// DEPARTMENT ROLLUP REPORT
// ========================================

type DepartmentReportRequest struct {
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	Department string       `json:"department,omitempty"`
	Data       DatasetInput `json:"data"`
}

func (r *DepartmentReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	GeneratedAt string `json:"generated_at"`

	Departments []DepartmentRow `json:"departments"`
}

type DepartmentRow struct {
	Department    string `json:"department"`
	EmployeeCount int    `json:"employee_count"`

	TotalRequiredHours   float64 `json:"total_required_hours"`
	TotalActualHours     float64 `json:"total_actual_hours"`
	TotalOvertimeHours   float64 `json:"total_overtime_hours"`
	CompensatoryDaysDue  int     `json:"compensatory_days_due"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

func DepartmentRowFromSummary(sum DepartmentSummary) DepartmentRow {
	return DepartmentRow{
		Department:           sum.Department,
		EmployeeCount:        sum.EmployeeCount,
		TotalRequiredHours:   sum.TotalRequiredHours,
		TotalActualHours:     sum.TotalActualHours,
		TotalOvertimeHours:   sum.TotalOvertimeHours,
		CompensatoryDaysDue:  sum.CompensatoryDaysDue,
		AttendancePercentage: sum.AttendancePercentage,
	}
}

// ========================================
// YEARLY ENTITLEMENT REPORT
// ========================================

type YearlyReportRequest struct {
	Year       int          `json:"year"`
	EmployeeID string       `json:"employee_id,omitempty"`
	Data       DatasetInput `json:"data"`
}

func (r *YearlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type YearlyReport struct {
	Year        int    `json:"year"`
	GeneratedAt string `json:"generated_at"`

	Rows []YearlyEntitlementRow `json:"rows"`
}

type YearlyEntitlementRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`

	MonthlyCompensatoryDays []int `json:"monthly_compensatory_days"`
	TotalCompensatoryDays   int   `json:"total_compensatory_days"`
}

func YearlyRowFromEntitlement(ent YearlyEntitlement) YearlyEntitlementRow {
	months := make([]int, len(ent.MonthlyCompensatoryDays))
	copy(months, ent.MonthlyCompensatoryDays[:])
	return YearlyEntitlementRow{
		EmployeeID:              ent.EmployeeID,
		EmployeeName:            ent.EmployeeName,
		Department:              ent.Department,
		MonthlyCompensatoryDays: months,
		TotalCompensatoryDays:   ent.TotalCompensatoryDays,
	}
}
