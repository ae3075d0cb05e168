package roster

import (
	"time"

	"github.com/teambition/rrule-go"

	appLog "dienstplan/internal/log"
	"dienstplan/internal/model"
)

const daysPerWeek = 7

// WeekDays lists every date covered by the header's range, start to end
// inclusive. A missing or inverted end date falls back to a seven-day week.
// The result is used for reporting, never to filter parsed days.
// The daily rule is bounded by Until, so it yields at most the header's range.
func WeekDays(anchor model.WeekAnchor, loc *time.Location) []time.Time {
	if anchor.Start.IsZero() {
		return nil
	}
	if loc == nil {
		loc = anchor.Start.Location()
	}

	start := inLocation(anchor.Start, loc)
	end := start.AddDate(0, 0, daysPerWeek-1)
	if !anchor.End.IsZero() && !anchor.End.Before(anchor.Start) {
		end = inLocation(anchor.End, loc)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   end,
	})
	if err != nil {
		appLog.Error("week enumeration failed", err, "start", start.Format("2006-01-02"))
		return nil
	}
	return r.All()
}
