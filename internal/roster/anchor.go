package roster

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"dienstplan/internal/model"
)

// shortDateLayout is the roster's DD.MM.YY form. Go's "06" expands two-digit
// years with the usual pivot: 69-99 → 19xx, 00-68 → 20xx.
const shortDateLayout = "02.01.06"

var anchorPattern = regexp.MustCompile(
	`(?:Wochen(?:ü|√º)bersicht|Week overview)\s+(\d{2}\.\d{2}\.\d{2})\s+(?:bis|to)\s+(\d{2}\.\d{2}\.\d{2})`,
)

// ErrMissingAnchor matches every *MissingAnchorError via errors.Is.
var ErrMissingAnchor = errors.New("week range header not found")

// MissingAnchorError means no day in the document can be dated.
type MissingAnchorError struct {
	// Header is the matched header text, empty when none was found.
	Header string
	Err    error
}

func (e *MissingAnchorError) Error() string {
	if e.Header == "" {
		return "could not extract week range from OCR text"
	}
	return fmt.Sprintf("could not parse week range %q: %v", e.Header, e.Err)
}

func (e *MissingAnchorError) Unwrap() error { return e.Err }

func (e *MissingAnchorError) Is(target error) bool { return target == ErrMissingAnchor }

// ExtractAnchor finds the first "Wochenübersicht DD.MM.YY bis DD.MM.YY"
// header (or its English rendering) and derives the week's year from the
// start date. The MacRoman-garbled "Wochen√ºbersicht" is accepted as well,
// since mojibake repair of the whole text is not always possible.
func ExtractAnchor(text string) (model.WeekAnchor, error) {
	m := anchorPattern.FindStringSubmatch(text)
	if m == nil {
		return model.WeekAnchor{}, &MissingAnchorError{}
	}

	start, err := time.Parse(shortDateLayout, m[1])
	if err != nil {
		return model.WeekAnchor{}, &MissingAnchorError{Header: m[0], Err: err}
	}

	anchor := model.WeekAnchor{Start: start, Year: start.Year()}
	if end, err := time.Parse(shortDateLayout, m[2]); err == nil {
		anchor.End = end
	}
	return anchor, nil
}
