package model

import "time"

// EventKind distinguishes shift entries with a clock range from whole-day
// status markers.
type EventKind int

const (
	Timed EventKind = iota
	AllDay
)

func (k EventKind) String() string {
	switch k {
	case Timed:
		return "timed"
	case AllDay:
		return "all-day"
	default:
		return "unknown"
	}
}

// WeekAnchor is taken from the roster header and dates every weekday block
// of the same document.
type WeekAnchor struct {
	Start time.Time
	// End is the header's end date; zero if it could not be parsed.
	End  time.Time
	Year int
}

// ScheduleEvent is one calendar entry extracted from a day block.
//
// Timed events start and end on the owning day with Start < End. AllDay
// events span 00:00:00 to 23:59:59 of that day.
type ScheduleEvent struct {
	Kind  EventKind
	Label string
	Start time.Time
	End   time.Time
}

func (e ScheduleEvent) IsAllDay() bool {
	return e.Kind == AllDay
}

// NewTimedEvent combines a date with two wall-clock offsets from midnight.
// The offsets are applied as clock readings in the date's location; a
// reading that falls into a DST gap is moved forward by time.Date, so
// callers must still check Start < End.
func NewTimedEvent(label string, date time.Time, start, end time.Duration) ScheduleEvent {
	return ScheduleEvent{
		Kind:  Timed,
		Label: label,
		Start: atClock(date, start),
		End:   atClock(date, end),
	}
}

func atClock(date time.Time, offset time.Duration) time.Time {
	h := int(offset / time.Hour)
	m := int(offset % time.Hour / time.Minute)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location())
}

func NewAllDayEvent(label string, date time.Time) ScheduleEvent {
	day := StartOfDay(date)
	return ScheduleEvent{
		Kind:  AllDay,
		Label: label,
		Start: day,
		End:   time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location()),
	}
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaySchedule holds the events of one calendar date in extraction order.
type DaySchedule struct {
	Date    time.Time
	Weekday string
	Events  []ScheduleEvent
}

// Schedule maps dates to their events. Iteration order is the order in which
// dates were first seen, not chronological.
type Schedule struct {
	Anchor WeekAnchor
	Days   []*DaySchedule

	index map[string]*DaySchedule
}

func NewSchedule(anchor WeekAnchor) *Schedule {
	return &Schedule{
		Anchor: anchor,
		index:  make(map[string]*DaySchedule),
	}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Day returns the entry for date, appending a new one if the date has not
// been seen yet. A repeated date reuses the existing entry so its events
// merge.
func (s *Schedule) Day(date time.Time, weekday string) *DaySchedule {
	if s.index == nil {
		s.index = make(map[string]*DaySchedule)
	}
	key := dateKey(date)
	if d, ok := s.index[key]; ok {
		return d
	}
	d := &DaySchedule{Date: StartOfDay(date), Weekday: weekday}
	s.index[key] = d
	s.Days = append(s.Days, d)
	return d
}

// Lookup returns the entry for date without creating one.
func (s *Schedule) Lookup(date time.Time) (*DaySchedule, bool) {
	d, ok := s.index[dateKey(date)]
	return d, ok
}

// Events flattens all days in schedule order.
func (s *Schedule) Events() []ScheduleEvent {
	out := make([]ScheduleEvent, 0, s.Len())
	for _, d := range s.Days {
		out = append(out, d.Events...)
	}
	return out
}

func (s *Schedule) Len() int {
	n := 0
	for _, d := range s.Days {
		n += len(d.Events)
	}
	return n
}
