package engine

import (
	"math"
	"sort"
	"time"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/attendance"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/employee"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

const (
	// DefaultRegularDailyHours is the daily quota outside Ramadan.
	DefaultRegularDailyHours = 7.0
	// DefaultRamadanDailyHours is the reduced daily quota inside a Ramadan range.
	DefaultRamadanDailyHours = 5.0
)

// Config carries the resolver quotas. Zero values fall back to the domain
// defaults (7h regular, 5h Ramadan).
type Config struct {
	RegularDailyHours float64
	RamadanDailyHours float64
}

func (c Config) withDefaults() Config {
	if c.RegularDailyHours <= 0 {
		c.RegularDailyHours = DefaultRegularDailyHours
	}
	if c.RamadanDailyHours <= 0 {
		c.RamadanDailyHours = DefaultRamadanDailyHours
	}
	return c
}

// Resolver derives required hours, overtime and compensatory-day entitlements
// from classified days and time logs. It is pure and stateless between calls:
// identical inputs always produce identical outputs, and concurrent use is
// safe as long as the input snapshots are not mutated mid-pass.
type Resolver struct {
	classifier *Classifier
	cfg        Config
}

func NewResolver(classifier *Classifier, cfg Config) *Resolver {
	return &Resolver{
		classifier: classifier,
		cfg:        cfg.withDefaults(),
	}
}

func (r *Resolver) Classifier() *Classifier {
	return r.classifier
}

// RequiredHours sums the expected work hours for an employee over the closed
// day range, skipping weekends, holidays and approved-leave days and applying
// the reduced Ramadan quota. A year with no registered Ramadan range simply
// never reduces the quota.
func (r *Resolver) RequiredHours(employeeID string, from, to time.Time) float64 {
	var total float64
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		cls := r.classifier.Classify(day, employeeID)
		if cls.OffDay() {
			continue
		}
		total += r.dailyQuota(cls)
	}
	return round2(total)
}

func (r *Resolver) dailyQuota(cls DayClass) float64 {
	if cls.Ramadan {
		return r.cfg.RamadanDailyHours
	}
	return r.cfg.RegularDailyHours
}

// ResolveMonth computes one employee's overtime record for one calendar
// month. The second return value is false when the record carries no data at
// all (zero actual and zero required hours) and must be excluded from report
// output. Logs outside the month, with unparseable dates, or duplicated for a
// day (first one wins) contribute nothing.
func (r *Resolver) ResolveMonth(
	emp employee.Employee,
	logs []attendance.TimeLog,
	year int,
	month time.Month,
) (overtime.Record, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	logByDate := indexLogsByDate(logs, emp.ID, year, month)

	var (
		required      float64
		actual        float64
		workDays      int
		offDaysWorked int
	)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		cls := r.classifier.Classify(day, emp.ID)
		onLeave := cls.Leave != nil

		if !cls.OffDay() {
			workDays++
			required += r.dailyQuota(cls)
		}

		log, logged := logByDate[day.Format("2006-01-02")]
		if !logged {
			continue
		}

		actual += DurationHours(log.ClockIn, log.ClockOut)

		// A leave day that coincides with a holiday or weekend counts
		// toward neither required hours nor the off-days-worked tally.
		if (cls.Weekend || cls.Holiday) && !onLeave {
			offDaysWorked++
		}
	}

	required = round2(required)
	actual = round2(actual)

	overtimeHours := round2(actual - required)
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	hoursPerDay := r.cfg.RegularDailyHours
	if workDays > 0 {
		hoursPerDay = required / float64(workDays)
	}

	compFromOvertime := 0
	if hoursPerDay > 0 {
		compFromOvertime = int(math.Floor(overtimeHours / hoursPerDay))
	}

	// Entitlement gate: no compensatory days are granted for a month the
	// employee fell short overall, even if individual off-days were worked.
	compDaysDue := 0
	if actual >= required {
		compDaysDue = compFromOvertime
		if offDaysWorked > compDaysDue {
			compDaysDue = offDaysWorked
		}
	}

	rec := overtime.Record{
		EmployeeID:          emp.ID,
		EmployeeName:        emp.Name,
		Department:          emp.Department,
		TotalRequiredHours:  required,
		TotalActualHours:    actual,
		TotalOvertimeHours:  overtimeHours,
		WorkDaysOnHolidays:  offDaysWorked,
		CompensatoryDaysDue: compDaysDue,
	}

	if actual == 0 && required == 0 {
		return rec, false
	}
	return rec, true
}

// indexLogsByDate keeps the first log per day that parses and falls inside
// the given month, enforcing the one-log-per-day invariant against dirty
// input.
func indexLogsByDate(logs []attendance.TimeLog, employeeID string, year int, month time.Month) map[string]attendance.TimeLog {
	byDate := make(map[string]attendance.TimeLog)
	for _, log := range logs {
		if log.EmployeeID != employeeID {
			continue
		}
		day, ok := validator.IsValidDate(log.Date)
		if !ok || day.Year() != year || day.Month() != month {
			continue
		}
		key := day.Format("2006-01-02")
		if _, exists := byDate[key]; exists {
			continue
		}
		byDate[key] = log
	}
	return byDate
}

// ResolveDepartmentMonth rolls the monthly records of one department up into
// a single summary row. Employees excluded from monthly output (no data that
// month) are excluded from the rollup too.
func (r *Resolver) ResolveDepartmentMonth(
	department string,
	employees []employee.Employee,
	logs []attendance.TimeLog,
	year int,
	month time.Month,
) overtime.DepartmentSummary {
	sum := overtime.DepartmentSummary{Department: department}

	for _, emp := range employees {
		if emp.Department != department {
			continue
		}
		rec, ok := r.ResolveMonth(emp, logs, year, month)
		if !ok {
			continue
		}
		sum.EmployeeCount++
		sum.TotalRequiredHours += rec.TotalRequiredHours
		sum.TotalActualHours += rec.TotalActualHours
		sum.TotalOvertimeHours += rec.TotalOvertimeHours
		sum.CompensatoryDaysDue += rec.CompensatoryDaysDue
	}

	sum.TotalRequiredHours = round2(sum.TotalRequiredHours)
	sum.TotalActualHours = round2(sum.TotalActualHours)
	sum.TotalOvertimeHours = round2(sum.TotalOvertimeHours)
	if sum.TotalRequiredHours > 0 {
		sum.AttendancePercentage = round2(sum.TotalActualHours / sum.TotalRequiredHours * 100)
	}

	return sum
}

// Departments returns the sorted distinct department names in the snapshot.
func Departments(employees []employee.Employee) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, emp := range employees {
		if _, ok := seen[emp.Department]; ok {
			continue
		}
		seen[emp.Department] = struct{}{}
		names = append(names, emp.Department)
	}
	sort.Strings(names)
	return names
}

// ResolveYear runs the monthly resolver independently for each of the 12
// months and reports the per-month compensatory-day sequence plus its sum.
// Months are not chained: a shortfall in one month does not reduce another
// month's entitlement.
func (r *Resolver) ResolveYear(
	emp employee.Employee,
	logs []attendance.TimeLog,
	year int,
) overtime.YearlyEntitlement {
	ent := overtime.YearlyEntitlement{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Department:   emp.Department,
		Year:         year,
	}

	for month := time.January; month <= time.December; month++ {
		rec, ok := r.ResolveMonth(emp, logs, year, month)
		if !ok {
			continue
		}
		ent.MonthlyCompensatoryDays[int(month)-1] = rec.CompensatoryDaysDue
		ent.TotalCompensatoryDays += rec.CompensatoryDaysDue
	}

	return ent
}
