// Package recurrence computes the occurrence dates of a weekly-by-weekday pattern.
//
// A sequence always covers a fixed look-ahead of WeeksAhead weeks, so its length is
// WeeksAhead × |weekdays|. Callers index into the result ("the second date is the next
// occurrence after the anchor"), which is why the bound must stay exact.
package recurrence

import (
	"github.com/teambition/rrule-go"

	"driver-planning-backend/internal/calendar"
)

// WeeksAhead is the look-ahead window of a generated sequence.
const WeeksAhead = 4

var rruleWeekdays = map[int]rrule.Weekday{
	0: rrule.SU,
	1: rrule.MO,
	2: rrule.TU,
	3: rrule.WE,
	4: rrule.TH,
	5: rrule.FR,
	6: rrule.SA,
}

// Generate returns the occurrences of days starting at anchor inclusive, in ascending order.
// An empty set yields an empty sequence.
func Generate(anchor calendar.Date, days WeekdaySet) []calendar.Date {
	if len(days) == 0 || anchor.IsZero() {
		return []calendar.Date{}
	}

	byweekday := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		wd, ok := rruleWeekdays[d]
		if !ok {
			return []calendar.Date{}
		}
		byweekday = append(byweekday, wd)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  1,
		Byweekday: byweekday,
		Dtstart:   anchor.Time(),
		Count:     WeeksAhead * len(days),
	})
	if err != nil {
		return []calendar.Date{}
	}

	times := rule.All()
	out := make([]calendar.Date, 0, len(times))
	for _, t := range times {
		out = append(out, calendar.DateOf(t))
	}
	return out
}

// GenerateExcluding is Generate minus every date calendar-equal to one of excluded.
//
// An empty excluded list yields an empty sequence, not the plain one: callers without
// exclusions must use Generate.
func GenerateExcluding(anchor calendar.Date, days WeekdaySet, excluded []calendar.Date) []calendar.Date {
	if len(days) == 0 || len(excluded) == 0 {
		return []calendar.Date{}
	}
	return calendar.Subtract(Generate(anchor, days), excluded)
}
