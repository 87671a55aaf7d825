package engine

import (
	"sort"
	"time"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/calendar"
	"github.com/dawam-hr/attendance-engine-go/internal/domain/leave"
	"github.com/dawam-hr/attendance-engine-go/internal/pkg/validator"
)

// LeaveTiebreak selects which request wins when an employee has overlapping
// approved leave for the same day. Overlap is a data-quality problem that
// belongs upstream; the classifier only makes the pick deterministic.
type LeaveTiebreak string

const (
	// TiebreakFirstMatch keeps the snapshot order, matching the behavior of
	// the legacy report screens.
	TiebreakFirstMatch    LeaveTiebreak = "first_match"
	TiebreakEarliestStart LeaveTiebreak = "earliest_start"
	TiebreakLongest       LeaveTiebreak = "longest"
)

// ParseLeaveTiebreak maps a config string to a LeaveTiebreak, defaulting to
// first-match for empty or unknown values.
func ParseLeaveTiebreak(s string) LeaveTiebreak {
	switch LeaveTiebreak(s) {
	case TiebreakEarliestStart:
		return TiebreakEarliestStart
	case TiebreakLongest:
		return TiebreakLongest
	default:
		return TiebreakFirstMatch
	}
}

// DayClass is the classification of one calendar day for one employee.
type DayClass struct {
	Weekend bool
	Holiday bool
	Ramadan bool

	// Leave is the approved leave request covering the day, nil if none.
	Leave *leave.Request
}

// OffDay reports whether the day contributes nothing to required hours.
func (c DayClass) OffDay() bool {
	return c.Weekend || c.Holiday || c.Leave != nil
}

type dateSpan struct {
	start time.Time
	end   time.Time
}

func (s dateSpan) contains(day time.Time) bool {
	return !day.Before(s.start) && !day.After(s.end)
}

type leaveSpan struct {
	span dateSpan
	req  leave.Request
}

// Classifier answers weekend/holiday/Ramadan/leave questions for calendar
// days. It is built once per computation pass from immutable snapshots and is
// safe for concurrent use afterwards.
type Classifier struct {
	holidays map[string]calendar.PublicHoliday
	ramadan  map[int]dateSpan
	leaves   map[string][]leaveSpan
}

// NewClassifier indexes the given snapshots. Records with malformed dates are
// skipped so that they can never match; only approved leave requests are
// indexed. The tie-break decides the probe order for overlapping leaves.
func NewClassifier(
	holidays []calendar.PublicHoliday,
	leaves []leave.Request,
	ramadanRanges []calendar.RamadanRange,
	tiebreak LeaveTiebreak,
) *Classifier {
	c := &Classifier{
		holidays: make(map[string]calendar.PublicHoliday, len(holidays)),
		ramadan:  make(map[int]dateSpan, len(ramadanRanges)),
		leaves:   make(map[string][]leaveSpan),
	}

	for _, h := range holidays {
		if _, ok := validator.IsValidDate(h.Date); !ok {
			continue
		}
		c.holidays[h.Date] = h
	}

	for _, r := range ramadanRanges {
		start, okStart := validator.IsValidDate(r.StartDate)
		end, okEnd := validator.IsValidDate(r.EndDate)
		if !okStart || !okEnd || end.Before(start) {
			continue
		}
		c.ramadan[r.Year] = dateSpan{start: start, end: end}
	}

	for _, req := range leaves {
		if req.Status != leave.RequestStatusApproved {
			continue
		}
		start, okStart := validator.IsValidDate(req.StartDate)
		end, okEnd := validator.IsValidDate(req.EndDate)
		if !okStart || !okEnd || end.Before(start) {
			continue
		}
		c.leaves[req.EmployeeID] = append(c.leaves[req.EmployeeID], leaveSpan{
			span: dateSpan{start: start, end: end},
			req:  req,
		})
	}

	for id := range c.leaves {
		orderLeaveSpans(c.leaves[id], tiebreak)
	}

	return c
}

// orderLeaveSpans reorders spans so that a linear first-containing-match scan
// implements the configured tie-break. First-match keeps snapshot order.
func orderLeaveSpans(spans []leaveSpan, tiebreak LeaveTiebreak) {
	switch tiebreak {
	case TiebreakEarliestStart:
		sort.SliceStable(spans, func(i, j int) bool {
			return spans[i].span.start.Before(spans[j].span.start)
		})
	case TiebreakLongest:
		sort.SliceStable(spans, func(i, j int) bool {
			di := spans[i].span.end.Sub(spans[i].span.start)
			dj := spans[j].span.end.Sub(spans[j].span.start)
			return di > dj
		})
	}
}

// Classify returns the day classification for the given employee. Weekend
// days are Friday and Saturday, fixed for this domain.
func (c *Classifier) Classify(day time.Time, employeeID string) DayClass {
	cls := DayClass{
		Weekend: day.Weekday() == time.Friday || day.Weekday() == time.Saturday,
	}

	if _, ok := c.holidays[day.Format("2006-01-02")]; ok {
		cls.Holiday = true
	}

	if span, ok := c.ramadan[day.Year()]; ok && span.contains(day) {
		cls.Ramadan = true
	}

	for i := range c.leaves[employeeID] {
		if c.leaves[employeeID][i].span.contains(day) {
			cls.Leave = &c.leaves[employeeID][i].req
			break
		}
	}

	return cls
}
