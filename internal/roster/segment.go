package roster

import (
	"regexp"
	"strconv"
	"time"

	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

var dayMarkerPattern = regexp.MustCompile(
	`(Montag|Dienstag|Mittwoch|Donnerstag|Freitag|Samstag|Sonntag)\s+(\d{2})\.(\d{2})\.(\d{2})`,
)

// DayBlock is the text between one weekday header and the next.
type DayBlock struct {
	Weekday string
	Date    time.Time
	Content string
}

// SplitDays cuts text at every "<Wochentag> DD.MM.YY" marker. The marker's
// day and month are combined with anchor.Year; its own two-digit year is
// not consulted. Markers naming an impossible date are skipped.
func SplitDays(text string, anchor model.WeekAnchor, loc *time.Location) []DayBlock {
	if loc == nil {
		loc = time.Local
	}

	matches := dayMarkerPattern.FindAllStringSubmatchIndex(text, -1)
	blocks := make([]DayBlock, 0, len(matches))

	for i, m := range matches {
		contentEnd := len(text)
		if i+1 < len(matches) {
			contentEnd = matches[i+1][0]
		}

		weekday := text[m[2]:m[3]]
		date, ok := markerDate(text[m[4]:m[5]], text[m[6]:m[7]], anchor.Year, loc)
		if !ok {
			appLog.Warn("skipping day with invalid date",
				"weekday", weekday,
				"marker", text[m[0]:m[1]],
			)
			continue
		}

		blocks = append(blocks, DayBlock{
			Weekday: weekday,
			Date:    date,
			Content: text[m[1]:contentEnd],
		})
	}

	return blocks
}

func markerDate(dd, mm string, year int, loc *time.Location) (time.Time, bool) {
	day, err := strconv.Atoi(dd)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, false
	}

	// time.Date normalizes 31.02 into March; reject anything that moved.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
