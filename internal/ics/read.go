// Package ics writes extracted schedules as iCalendar files and reads such
// files back for listing and verification.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

// ReadFile parses the calendar at path. See Parse.
func ReadFile(path string, loc *time.Location) ([]model.ScheduleEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, loc)
}

// Parse reads VEVENTs back into ScheduleEvents, converted into loc.
//
//   - All-day is detected by VALUE=DATE or a date-only DTSTART; such events
//     are mapped back to 00:00:00–23:59:59 of their date.
//   - A VEVENT without DTSTART is logged and skipped; the rest still parse.
func Parse(r io.Reader, loc *time.Location) ([]model.ScheduleEvent, error) {
	if loc == nil {
		loc = time.Local
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	events := make([]model.ScheduleEvent, 0)
	for _, comp := range cal.Events() {
		ev, perr := parseVEvent(comp, loc)
		if perr != nil {
			appLog.Error("ics vevent parse failed", perr, "uid", comp.Id())
			continue
		}
		events = append(events, ev)
	}

	appLog.Debug("ics parse completed", "event_count", len(events))
	return events, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (model.ScheduleEvent, error) {
	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return model.ScheduleEvent{}, errors.New("missing DTSTART")
	}

	var summary string
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}

	if isDateValue(dtStart) {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return model.ScheduleEvent{}, err
		}
		date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		return model.NewAllDayEvent(summary, date), nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return model.ScheduleEvent{}, err
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return model.ScheduleEvent{}, err
	}

	return model.ScheduleEvent{
		Kind:  model.Timed,
		Label: summary,
		Start: start.In(loc),
		End:   end.In(loc),
	}, nil
}

func isDateValue(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
