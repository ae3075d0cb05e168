package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimedEvent(t *testing.T) {
	date := time.Date(2025, 9, 3, 7, 30, 0, 0, time.UTC)
	ev := NewTimedEvent("Kurs 216", date, 12*time.Hour+43*time.Minute, 23*time.Hour+40*time.Minute)

	assert.Equal(t, Timed, ev.Kind)
	assert.False(t, ev.IsAllDay())
	assert.Equal(t, time.Date(2025, 9, 3, 12, 43, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2025, 9, 3, 23, 40, 0, 0, time.UTC), ev.End)
}

func TestNewAllDayEvent(t *testing.T) {
	ev := NewAllDayEvent("Frei", time.Date(2025, 9, 6, 15, 0, 0, 0, time.UTC))

	assert.True(t, ev.IsAllDay())
	assert.Equal(t, "all-day", ev.Kind.String())
	assert.Equal(t, time.Date(2025, 9, 6, 0, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2025, 9, 6, 23, 59, 59, 0, time.UTC), ev.End)
}

func TestScheduleDayMergesRepeatedDates(t *testing.T) {
	s := NewSchedule(WeekAnchor{Year: 2025})
	wed := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	d := s.Day(wed, "Mittwoch")
	d.Events = append(d.Events, NewAllDayEvent("Frei", wed))
	s.Day(mon, "Montag")

	again := s.Day(wed.Add(5*time.Hour), "Mittwoch")
	require.Same(t, d, again)
	again.Events = append(again.Events, NewAllDayEvent("Urlaub Wochenende", wed))

	require.Len(t, s.Days, 2)
	assert.Equal(t, wed, s.Days[0].Date, "construction order, not chronological")
	assert.Equal(t, mon, s.Days[1].Date)
	assert.Equal(t, 2, s.Len())

	labels := []string{}
	for _, ev := range s.Events() {
		labels = append(labels, ev.Label)
	}
	assert.Equal(t, []string{"Frei", "Urlaub Wochenende"}, labels)

	_, ok := s.Lookup(time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestZeroValueScheduleDay(t *testing.T) {
	var s Schedule
	d := s.Day(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "Montag")
	assert.NotNil(t, d)
	assert.Equal(t, 0, s.Len())
}
