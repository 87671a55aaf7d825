package calendar

// PublicHoliday applies to every department uniformly.
type PublicHoliday struct {
	ID   string
	Name string
	Date string // YYYY-MM-DD
}

// RamadanRange is the inclusive date interval during which the daily required
// hours quota is reduced. At most one range exists per calendar year.
type RamadanRange struct {
	Year      int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}
