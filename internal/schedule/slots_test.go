package schedule

import (
	"reflect"
	"testing"
	"time"
)

// times builds a TimeOfDay slice from "HH:MM" literals.
func times(t *testing.T, ss ...string) []TimeOfDay {
	t.Helper()
	out := make([]TimeOfDay, 0, len(ss))
	for _, s := range ss {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("bad literal %q: %v", s, err)
		}
		out = append(out, tod)
	}
	return out
}

func TestSlots(t *testing.T) {
	cal := DefaultCalendar()
	// 2026-09-07 is a Monday (09:00-17:00).
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	thursday := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	// A "now" long before any test date, so no slot is filtered as past.
	past := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name        string
		cal         Calendar
		date        time.Time
		granularity int
		now         time.Time
		want        []TimeOfDay
	}{
		{
			name:        "Closed day yields nothing",
			cal:         cal,
			date:        sunday,
			granularity: 15,
			now:         past,
			want:        nil,
		},
		{
			name:        "Thursday short day, hourly granularity",
			cal:         cal,
			date:        thursday,
			granularity: 60,
			now:         past,
			want:        times(t, "10:00", "11:00", "12:00", "13:00"),
		},
		{
			name:        "Close itself is never a slot",
			cal:         cal,
			date:        thursday,
			granularity: 120,
			now:         past,
			want:        times(t, "10:00", "12:00"),
		},
		{
			name:        "Granularity that does not divide the day stops short of close",
			cal:         cal,
			date:        thursday,
			granularity: 150,
			now:         past,
			want:        times(t, "10:00", "12:30"),
		},
		{
			name:        "Same-day slots exclude starts at or before now",
			cal:         cal,
			date:        monday,
			granularity: 60,
			now:         time.Date(2026, 9, 7, 13, 0, 0, 0, time.Local),
			want:        times(t, "14:00", "15:00", "16:00"),
		},
		{
			name:        "Future date is unaffected by the clock",
			cal:         cal,
			date:        thursday,
			granularity: 60,
			now:         time.Date(2026, 9, 7, 13, 0, 0, 0, time.Local),
			want:        times(t, "10:00", "11:00", "12:00", "13:00"),
		},
		{
			name: "Zero-length day yields nothing",
			cal: NewCalendar(map[time.Weekday]DayHours{
				time.Monday: {Open: hm(9, 0), Close: hm(9, 0)},
			}),
			date:        monday,
			granularity: 15,
			now:         past,
			want:        nil,
		},
		{
			name:        "Non-positive granularity yields nothing",
			cal:         cal,
			date:        monday,
			granularity: 0,
			now:         past,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slots(tt.cal, tt.date, tt.granularity, tt.now)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotsDefaultGranularityCount(t *testing.T) {
	cal := DefaultCalendar()
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	past := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	got := Slots(cal, monday, 15, past)
	// 09:00-17:00 at 15 minutes = 32 starts, from 09:00 to 16:45.
	if len(got) != 32 {
		t.Fatalf("len(Slots()) = %d, want 32", len(got))
	}
	if got[0] != hm(9, 0) || got[len(got)-1] != hm(16, 45) {
		t.Errorf("Slots() range = [%v, %v], want [09:00, 16:45]", got[0], got[len(got)-1])
	}
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: hm(10, 0), Duration: 60}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "Identical", other: Interval{Start: hm(10, 0), Duration: 60}, want: true},
		{name: "Contained", other: Interval{Start: hm(10, 15), Duration: 15}, want: true},
		{name: "Straddles the start", other: Interval{Start: hm(9, 30), Duration: 45}, want: true},
		{name: "Straddles the end", other: Interval{Start: hm(10, 45), Duration: 60}, want: true},
		{name: "Back to back before", other: Interval{Start: hm(9, 0), Duration: 60}, want: false},
		{name: "Back to back after", other: Interval{Start: hm(11, 0), Duration: 30}, want: false},
		{name: "Disjoint", other: Interval{Start: hm(14, 0), Duration: 30}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFits(t *testing.T) {
	cal := DefaultCalendar()
	// 2026-09-09 is a Wednesday (09:00-17:00).
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)

	booked := []Interval{
		{Start: hm(10, 0), Duration: 60},
		{Start: hm(13, 0), Duration: 45},
	}

	tests := []struct {
		name     string
		date     time.Time
		start    TimeOfDay
		duration int
		booked   []Interval
		want     bool
	}{
		{name: "Free slot inside hours", date: wednesday, start: hm(11, 30), duration: 60, booked: booked, want: true},
		{name: "Closed day", date: sunday, start: hm(11, 0), duration: 30, booked: nil, want: false},
		{name: "Starts before opening", date: wednesday, start: hm(8, 45), duration: 30, booked: nil, want: false},
		{name: "Ends exactly at close", date: wednesday, start: hm(16, 30), duration: 30, booked: nil, want: true},
		{name: "Runs past close", date: wednesday, start: hm(16, 30), duration: 60, booked: nil, want: false},
		{name: "Collides with existing visit", date: wednesday, start: hm(10, 30), duration: 60, booked: booked, want: false},
		{name: "Fully covers existing visit", date: wednesday, start: hm(12, 45), duration: 90, booked: booked, want: false},
		{name: "Ends where a visit starts", date: wednesday, start: hm(12, 0), duration: 60, booked: booked, want: true},
		{name: "Starts where a visit ends", date: wednesday, start: hm(11, 0), duration: 30, booked: booked, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(cal, tt.date, tt.start, tt.duration, tt.booked); got != tt.want {
				t.Errorf("Fits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogTotalDuration(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		name     string
		services []string
		want     int
	}{
		{name: "Single service", services: []string{"Strzyżenie"}, want: 60},
		{name: "Combined visit", services: []string{"Kąpiel i suszenie", "Obcinanie pazurów"}, want: 75},
		{name: "Unknown service adds nothing", services: []string{"Strzyżenie", "Masaż"}, want: 60},
		{name: "Empty", services: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.TotalDuration(tt.services); got != tt.want {
				t.Errorf("TotalDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}
