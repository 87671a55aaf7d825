package overtime

import (
	"context"
	"time"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/calendar"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/employee"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/leave"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/schedule"
	"github.com/dawam-hr/attendance-engine-go/internal/engine"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	engineCfg engine.Config
	tiebreak  engine.LeaveTiebreak
}

func NewOvertimeService(engineCfg engine.Config, tiebreak engine.LeaveTiebreak) overtime.Service {
	return &OvertimeServiceImpl{
		engineCfg: engineCfg,
		tiebreak:  tiebreak,
	}
}

// snapshot is one request's converted, normalized input data.
type snapshot struct {
	employees []employee.Employee
	logs      []attendance.TimeLog
	resolver  *engine.Resolver
}

// buildSnapshot converts the wire dataset to entities, pre-fills log clock
// times from shift templates, and constructs the resolver for this pass.
func (s *OvertimeServiceImpl) buildSnapshot(data overtime.DatasetInput) snapshot {
	employees := make([]employee.Employee, 0, len(data.Employees))
	for _, in := range data.Employees {
		employees = append(employees, in.ToEntity())
	}

	shifts := make([]schedule.Shift, 0, len(data.Shifts))
	for _, in := range data.Shifts {
		shifts = append(shifts, in.ToEntity())
	}

	logs := make([]attendance.TimeLog, 0, len(data.TimeLogs))
	for _, in := range data.TimeLogs {
		logs = append(logs, in.ToEntity())
	}
	logs = applyShiftDefaults(logs, shifts)

	holidays := make([]calendar.PublicHoliday, 0, len(data.Holidays))
	for _, in := range data.Holidays {
		holidays = append(holidays, in.ToEntity())
	}

	leaves := make([]leave.Request, 0, len(data.LeaveRequests))
	for _, in := range data.LeaveRequests {
		leaves = append(leaves, in.ToEntity())
	}

	ranges := make([]calendar.RamadanRange, 0, len(data.RamadanRanges))
	for _, in := range data.RamadanRanges {
		ranges = append(ranges, in.ToEntity())
	}

	classifier := engine.NewClassifier(holidays, leaves, ranges, s.tiebreak)

	return snapshot{
		employees: employees,
		logs:      logs,
		resolver:  engine.NewResolver(classifier, s.engineCfg),
	}
}

// applyShiftDefaults fills empty clock times from the referenced shift
// template. The engine itself never reads shifts; the template is only a
// pre-fill for logs that were created from a schedule without actual punches.
func applyShiftDefaults(logs []attendance.TimeLog, shifts []schedule.Shift) []attendance.TimeLog {
	if len(shifts) == 0 {
		return logs
	}

	byID := make(map[string]schedule.Shift, len(shifts))
	for _, sh := range shifts {
		byID[sh.ID] = sh
	}

	for i := range logs {
		if logs[i].ShiftID == nil {
			continue
		}
		sh, ok := byID[*logs[i].ShiftID]
		if !ok {
			continue
		}
		if logs[i].ClockIn == "" {
			logs[i].ClockIn = sh.StartTime
		}
		if logs[i].ClockOut == "" {
			logs[i].ClockOut = sh.EndTime
		}
	}

	return logs
}

// GenerateMonthlyOvertimeReport generates per-employee overtime records for
// one month. Employees with no relevant data that month are excluded.
func (s *OvertimeServiceImpl) GenerateMonthlyOvertimeReport(ctx context.Context, req overtime.MonthlyReportRequest) (overtime.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return overtime.MonthlyReport{}, err
	}

	snap := s.buildSnapshot(req.Data)

	employees := snap.employees
	if !validator.IsEmpty(req.EmployeeID) {
		emp, ok := findEmployee(employees, req.EmployeeID)
		if !ok {
			return overtime.MonthlyReport{}, overtime.ErrEmployeeNotFound
		}
		employees = []employee.Employee{emp}
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	rows := make([]overtime.OvertimeRow, 0, len(employees))
	for _, emp := range employees {
		rec, ok := snap.resolver.ResolveMonth(emp, snap.logs, req.Year, time.Month(req.Month))
		if !ok {
			continue
		}
		rows = append(rows, overtime.OvertimeRowFromRecord(rec))
	}

	return overtime.MonthlyReport{
		PeriodMonth:    req.Month,
		PeriodYear:     req.Year,
		PeriodStart:    periodStart.Format("2006-01-02"),
		PeriodEnd:      periodEnd.Format("2006-01-02"),
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalEmployees: len(rows),
		Rows:           rows,
	}, nil
}

// GenerateDepartmentOvertimeReport rolls monthly records up per department.
func (s *OvertimeServiceImpl) GenerateDepartmentOvertimeReport(ctx context.Context, req overtime.DepartmentReportRequest) (overtime.DepartmentReport, error) {
	if err := req.Validate(); err != nil {
		return overtime.DepartmentReport{}, err
	}

	snap := s.buildSnapshot(req.Data)

	departments := engine.Departments(snap.employees)
	if !validator.IsEmpty(req.Department) {
		if !validator.IsInSlice(req.Department, departments) {
			return overtime.DepartmentReport{}, overtime.ErrDepartmentNotFound
		}
		departments = []string{req.Department}
	}

	rows := make([]overtime.DepartmentRow, 0, len(departments))
	for _, dept := range departments {
		sum := snap.resolver.ResolveDepartmentMonth(dept, snap.employees, snap.logs, req.Year, time.Month(req.Month))
		rows = append(rows, overtime.DepartmentRowFromSummary(sum))
	}

	return overtime.DepartmentReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Departments: rows,
	}, nil
}

// GenerateYearlyEntitlementReport reports each employee's per-month
// compensatory-day sequence and its sum for one calendar year.
func (s *OvertimeServiceImpl) GenerateYearlyEntitlementReport(ctx context.Context, req overtime.YearlyReportRequest) (overtime.YearlyReport, error) {
	if err := req.Validate(); err != nil {
		return overtime.YearlyReport{}, err
	}

	snap := s.buildSnapshot(req.Data)

	employees := snap.employees
	if !validator.IsEmpty(req.EmployeeID) {
		emp, ok := findEmployee(employees, req.EmployeeID)
		if !ok {
			return overtime.YearlyReport{}, overtime.ErrEmployeeNotFound
		}
		employees = []employee.Employee{emp}
	}

	rows := make([]overtime.YearlyEntitlementRow, 0, len(employees))
	for _, emp := range employees {
		ent := snap.resolver.ResolveYear(emp, snap.logs, req.Year)
		rows = append(rows, overtime.YearlyRowFromEntitlement(ent))
	}

	return overtime.YearlyReport{
		Year:        req.Year,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

func findEmployee(employees []employee.Employee, id string) (employee.Employee, bool) {
	for _, emp := range employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return employee.Employee{}, false
}
