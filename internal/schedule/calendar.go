package schedule

import "time"

// DayHours is the open/close pair for one weekday.
type DayHours struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Calendar maps weekdays to opening hours. Days without an entry are closed.
// It is an injected immutable value, so alternate calendars stay testable.
type Calendar struct {
	hours map[time.Weekday]DayHours
}

// NewCalendar builds a Calendar from a weekday table. The map is copied.
func NewCalendar(hours map[time.Weekday]DayHours) Calendar {
	cp := make(map[time.Weekday]DayHours, len(hours))
	for day, h := range hours {
		cp[day] = h
	}
	return Calendar{hours: cp}
}

// HoursFor returns the opening hours for the weekday.
// ok is false when the salon is closed that day.
func (c Calendar) HoursFor(day time.Weekday) (DayHours, bool) {
	h, ok := c.hours[day]
	return h, ok
}

func hm(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// DefaultCalendar is the salon's weekly opening table.
func DefaultCalendar() Calendar {
	return NewCalendar(map[time.Weekday]DayHours{
		time.Monday:    {Open: hm(9, 0), Close: hm(17, 0)},
		time.Tuesday:   {Open: hm(14, 0), Close: hm(20, 0)},
		time.Wednesday: {Open: hm(9, 0), Close: hm(17, 0)},
		time.Thursday:  {Open: hm(10, 0), Close: hm(14, 0)},
		time.Friday:    {Open: hm(9, 0), Close: hm(17, 0)},
		time.Saturday:  {Open: hm(10, 0), Close: hm(14, 0)},
		// Sunday: closed
	})
}
