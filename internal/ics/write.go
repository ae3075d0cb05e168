package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"dienstplan/internal/fsutil"
	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

// uidNamespace scopes the name-based UUIDs of emitted events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:dienstplan:event"))

// WriteOptions controls calendar-level properties of the output.
type WriteOptions struct {
	ProductID    string
	CalendarName string
	// Timezone is advertised as X-WR-TIMEZONE; event times are written in UTC.
	Timezone string
	// Now stamps DTSTAMP. Nil means time.Now.
	Now func() time.Time
}

// BuildCalendar turns a schedule into a VCALENDAR with one VEVENT per
// ScheduleEvent, in schedule order.
//
//   - Timed events carry UTC DTSTART/DTEND date-times.
//   - All-day events carry VALUE=DATE, with DTEND on the following day as
//     iCalendar's end date is exclusive.
//   - UIDs are derived from the event itself, so re-running on the same
//     input yields the same UIDs and calendar clients update in place.
func BuildCalendar(s *model.Schedule, opts WriteOptions) *ical.Calendar {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := now()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if opts.ProductID != "" {
		cal.SetProductId(opts.ProductID)
	}
	if opts.CalendarName != "" {
		cal.SetXWRCalName(opts.CalendarName)
	}
	if opts.Timezone != "" {
		cal.SetXWRTimezone(opts.Timezone)
	}

	for _, day := range s.Days {
		for i, ev := range day.Events {
			vev := cal.AddEvent(EventUID(day.Date, i, ev))
			vev.SetDtStampTime(stamp)
			vev.SetSummary(ev.Label)

			if ev.IsAllDay() {
				date := model.StartOfDay(ev.Start)
				vev.SetAllDayStartAt(date)
				vev.SetAllDayEndAt(date.AddDate(0, 0, 1))
				continue
			}
			vev.SetStartAt(ev.Start)
			vev.SetEndAt(ev.End)
		}
	}

	return cal
}

// EventUID is a UUIDv5 over the event's date, its position within the day
// and its content. The position keeps two identical markers on one day apart.
func EventUID(date time.Time, ordinal int, ev model.ScheduleEvent) string {
	name := fmt.Sprintf("%s|%d|%s|%s|%s|%s",
		date.Format("2006-01-02"),
		ordinal,
		ev.Kind,
		ev.Label,
		ev.Start.UTC().Format(time.RFC3339),
		ev.End.UTC().Format(time.RFC3339),
	)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String()
}

// Encode renders the schedule as iCalendar text.
func Encode(s *model.Schedule, opts WriteOptions) string {
	return BuildCalendar(s, opts).Serialize()
}

// WriteFile renders the schedule and writes it to path in one step.
func WriteFile(path string, s *model.Schedule, opts WriteOptions) error {
	body := Encode(s, opts)
	if err := fsutil.WriteFileAtomic(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write calendar %s: %w", path, err)
	}
	appLog.Info("ics written", "path", path, "events", s.Len(), "bytes", len(body))
	return nil
}
