package schedule

import "time"

// Interval is a half-open [Start, Start+Duration) span of minutes on a
// single calendar date. Intervals never cross midnight.
type Interval struct {
	Start    TimeOfDay
	Duration int
}

// End returns the exclusive end of the interval.
func (i Interval) End() TimeOfDay {
	return i.Start + TimeOfDay(i.Duration)
}

// Overlaps reports whether two half-open intervals intersect.
// Intervals that merely touch at an endpoint do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End() && i.End() > o.Start
}

// Slots enumerates candidate start times for date, walking from open to
// close in steps of granularityMin. The result is ascending and never
// includes close itself; a final partial step is simply not reached.
// When date is now's calendar date, only starts strictly after now are
// emitted, so nothing can be booked retroactively on the current day.
// Closed days yield nothing.
func Slots(cal Calendar, date time.Time, granularityMin int, now time.Time) []TimeOfDay {
	hours, open := cal.HoursFor(date.Weekday())
	if !open || granularityMin <= 0 {
		return nil
	}

	today := SameDate(date, now)

	var slots []TimeOfDay
	for cur := hours.Open; cur < hours.Close; cur += TimeOfDay(granularityMin) {
		if today && !cur.At(date).After(now) {
			continue
		}
		slots = append(slots, cur)
	}
	return slots
}

// Fits reports whether a visit of durationMin starting at start on date
// stays fully inside opening hours and clear of every booked interval.
// booked must already be scoped to the same date by the caller.
// The function is pure: no I/O, deterministic for its inputs.
func Fits(cal Calendar, date time.Time, start TimeOfDay, durationMin int, booked []Interval) bool {
	hours, open := cal.HoursFor(date.Weekday())
	if !open {
		return false
	}

	requested := Interval{Start: start, Duration: durationMin}
	if requested.Start < hours.Open || requested.End() > hours.Close {
		return false
	}

	for _, b := range booked {
		if requested.Overlaps(b) {
			return false
		}
	}
	return true
}
