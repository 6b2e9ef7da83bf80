package ingestion

import (
	"time"

	"github.com/rickar/cal/v2"
)

const dayLayout = "2006-01-02"

// Calendar decides which dates are business days: weekdays that are not
// listed as holidays. The zero value treats every weekday as a business day.
type Calendar struct {
	bc *cal.BusinessCalendar
}

// NewCalendar builds a calendar from explicit holiday dates. Only the
// calendar date of each entry matters; each one is a single-year holiday.
func NewCalendar(holidays []time.Time) Calendar {
	bc := cal.NewBusinessCalendar()
	for _, h := range holidays {
		y, m, d := h.Date()
		bc.AddHoliday(&cal.Holiday{
			Name:      "holiday " + h.Format(dayLayout),
			Type:      cal.ObservancePublic,
			StartYear: y,
			EndYear:   y,
			Month:     m,
			Day:       d,
			Func:      cal.CalcDayOfMonth,
		})
	}
	return Calendar{bc: bc}
}

// IsBusinessDay reports whether d is a weekday and not a holiday.
func (c Calendar) IsBusinessDay(d time.Time) bool {
	if c.bc == nil {
		wd := d.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}
	return c.bc.IsWorkday(truncateToDate(d))
}

// LastNBusinessDays returns the last n business days up to and including
// from (most recent first).
func (c Calendar) LastNBusinessDays(n int, from time.Time) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, 0, n)
	d := truncateToDate(from)

	for len(out) < n {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

// BusinessDaysBetween returns every business day in [start, end], oldest first.
func (c Calendar) BusinessDaysBetween(start, end time.Time) []time.Time {
	var out []time.Time
	last := truncateToDate(end)
	for d := truncateToDate(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// MissingBusinessDays returns the business days in [start, end] absent from have.
func (c Calendar) MissingBusinessDays(start, end time.Time, have []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(have))
	for _, d := range have {
		seen[d.Format(dayLayout)] = struct{}{}
	}
	var out []time.Time
	for _, d := range c.BusinessDaysBetween(start, end) {
		if _, ok := seen[d.Format(dayLayout)]; !ok {
			out = append(out, d)
		}
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
