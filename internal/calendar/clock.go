package calendar

import (
	"sort"
	"time"
)

// Clock supplies "today" in the planning's local calendar.
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock returns a clock for the named IANA zone.
func NewSystemClock(zone string) (*SystemClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &SystemClock{Location: loc}, nil
}

// Today returns the current calendar day.
func (c *SystemClock) Today() Date {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always returns the same day. Used by tests and one-shot commands.
type FixedClock Date

// Today returns the fixed day.
func (c FixedClock) Today() Date { return Date(c) }

// IsToday reports whether d is today according to clock.
func IsToday(d Date, clock Clock) bool {
	return d.Equal(clock.Today())
}

// IsBeforeToday reports whether d is strictly before today.
func IsBeforeToday(d Date, clock Clock) bool {
	return d.Before(clock.Today())
}

// IsOld reports whether d lies more than days calendar days in the past.
func IsOld(d Date, clock Clock, days int) bool {
	return clock.Today().DaysSince(d) > days
}

// Week returns the seven consecutive days starting at from.
func Week(from Date) []Date {
	days := make([]Date, 7)
	for i := range days {
		days[i] = from.AddDays(i)
	}
	return days
}

// Contains reports whether list holds d.
func Contains(list []Date, d Date) bool {
	for _, item := range list {
		if item.Equal(d) {
			return true
		}
	}
	return false
}

// Subtract returns the dates of a that are not in any of the others, keeping a's order.
func Subtract(a []Date, others ...[]Date) []Date {
	exclude := make(map[Date]struct{})
	for _, list := range others {
		for _, d := range list {
			exclude[d] = struct{}{}
		}
	}
	out := make([]Date, 0, len(a))
	for _, d := range a {
		if _, ok := exclude[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// Sort orders dates ascending in place.
func Sort(dates []Date) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

// Strings formats every date as dd/MM/yyyy.
func Strings(dates []Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
