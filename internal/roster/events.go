package roster

import (
	"regexp"
	"strings"
	"time"

	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

const (
	LabelFree           = "Frei"
	LabelWeekendHoliday = "Urlaub Wochenende"
)

var (
	timedShiftPattern = regexp.MustCompile(
		`(Kurs \d+)\s+Start:\s*(\d{2}:\d{2})\s*-\s*Ende:\s*(\d{2}:\d{2})`,
	)
	shiftCodePattern = regexp.MustCompile(`Kurs \d+`)

	// Any capitalized "Surname, Givenname" directly before Frei.
	namedFreePattern = regexp.MustCompile(`\p{Lu}[\p{L}'-]*, \p{Lu}[\p{L}'-]*\s+Frei\b`)

	statusPattern = regexp.MustCompile(`\b(?:Frei|Urlaub Wochenende)\b`)
)

// ExtractTimed is pass A: one Timed event per line that carries a shift code
// followed on the same line by "Start: HH:MM - Ende: HH:MM". Only the first
// such pair on a line counts. Shift codes without a time range are dropped.
//
// OCR sometimes concatenates several codes and ranges onto one line; those
// lines still only yield their first leading pair, or nothing at all. Pairing
// them up any other way has proven unreliable.
func (p *Parser) ExtractTimed(date time.Time, content string) []model.ScheduleEvent {
	var events []model.ScheduleEvent

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := timedShiftPattern.FindStringSubmatch(line)
		if m == nil {
			if code := shiftCodePattern.FindString(line); code != "" {
				appLog.Debug("shift code without time range ignored",
					"date", date.Format("2006-01-02"),
					"code", code,
				)
			}
			continue
		}

		label := m[1]
		start, okStart := clockOffset(m[2])
		end, okEnd := clockOffset(m[3])
		if !okStart || !okEnd {
			appLog.Warn("shift with invalid clock time dropped",
				"date", date.Format("2006-01-02"),
				"code", label,
				"line", line,
			)
			continue
		}

		// Compared after building: a clock reading skipped by a DST change
		// moves forward and can overtake the end.
		ev := model.NewTimedEvent(label, date, start, end)
		if !ev.End.After(ev.Start) {
			appLog.Warn("shift ending before it starts dropped",
				"date", date.Format("2006-01-02"),
				"code", label,
				"start", m[2],
				"end", m[3],
			)
			continue
		}

		events = append(events, ev)
	}

	return events
}

// ExtractAllDay is pass B, run on the whole block with line breaks flattened.
// A "<Surname>, <Givenname> Frei" marker yields a single Frei event and
// suppresses the standalone scan for that day; otherwise every standalone
// Frei or "Urlaub Wochenende" becomes its own event.
func (p *Parser) ExtractAllDay(date time.Time, content string) []model.ScheduleEvent {
	flat := strings.ReplaceAll(content, "\n", " ")

	if p.personFree.MatchString(flat) {
		return []model.ScheduleEvent{model.NewAllDayEvent(LabelFree, date)}
	}

	var events []model.ScheduleEvent
	for _, label := range statusPattern.FindAllString(flat, -1) {
		events = append(events, model.NewAllDayEvent(label, date))
	}
	return events
}

// clockOffset parses HH:MM into a duration since midnight.
func clockOffset(s string) (time.Duration, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
