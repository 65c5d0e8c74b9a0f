package domain

import "time"

// Period selects the window for order and top-product rollups.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a query value to a Period. Unknown or empty values mean month.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// WindowStart returns the first instant covered by p.
func (p Period) WindowStart(now time.Time) time.Time {
	now = now.UTC()
	switch p {
	case PeriodDay:
		return DayStart(now)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// DayStart is midnight UTC of now's day.
func DayStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart is midnight UTC on the first of now's month.
func MonthStart(now time.Time) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
