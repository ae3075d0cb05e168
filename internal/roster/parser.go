// Package roster turns OCR text of a German weekly roster into a
// model.Schedule.
//
// The pipeline is linear: ExtractAnchor dates the document, SplitDays cuts it
// into weekday blocks, and each block goes through ExtractTimed (shift codes
// with times, line by line) and ExtractAllDay (Frei / Urlaub Wochenende on
// the flattened block).
//
// Text that does not match the expected shapes (other date formats, non-German
// weekday names, heavily garbled lines) produces no events and no error.
package roster

import (
	"regexp"
	"time"

	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

// Parser holds the per-run settings of the extractor. It has no mutable
// state; one Parser can parse any number of documents.
type Parser struct {
	loc        *time.Location
	personFree *regexp.Regexp
}

type Option func(*Parser)

// WithLocation sets the zone roster times are interpreted in (default
// time.Local).
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.loc = loc
		}
	}
}

// WithPerson restricts the "<Surname>, <Givenname> Frei" marker to name,
// e.g. "Rebenstorf, Michael". An empty name keeps the generic pattern.
func WithPerson(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.personFree = regexp.MustCompile(regexp.QuoteMeta(name) + `\s+Frei\b`)
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		loc:        time.Local,
		personFree: namedFreePattern,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the whole extraction. The only error is *MissingAnchorError.
func (p *Parser) Parse(text string) (*model.Schedule, error) {
	anchor, err := ExtractAnchor(text)
	if err != nil {
		return nil, err
	}
	anchor.Start = inLocation(anchor.Start, p.loc)
	if !anchor.End.IsZero() {
		anchor.End = inLocation(anchor.End, p.loc)
	}

	schedule := model.NewSchedule(anchor)

	for _, block := range SplitDays(text, anchor, p.loc) {
		day := schedule.Day(block.Date, block.Weekday)

		timed := p.ExtractTimed(block.Date, block.Content)
		allDay := p.ExtractAllDay(block.Date, block.Content)
		day.Events = append(day.Events, timed...)
		day.Events = append(day.Events, allDay...)

		appLog.Debug("day parsed",
			"weekday", block.Weekday,
			"date", block.Date.Format("2006-01-02"),
			"timed", len(timed),
			"all_day", len(allDay),
		)
	}

	appLog.Info("roster parsed",
		"week_start", anchor.Start.Format("2006-01-02"),
		"year", anchor.Year,
		"days", len(schedule.Days),
		"events", schedule.Len(),
	)
	return schedule, nil
}

// inLocation keeps the wall-clock date of a header date but moves it into loc.
func inLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
