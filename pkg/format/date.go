package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/dmitrymomot/invoicekit/pkg/locale"
)

// Date is a calendar date with no time zone. Invoice dates are days, not
// instants, so they are kept apart from time.Time to avoid midnight-UTC shifts.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String returns the ISO 8601 form, YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns noon UTC on d. Noon keeps the calendar day stable in any
// zone within ±12h if a caller converts it.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// MarshalText encodes d as YYYY-MM-DD. The zero Date encodes as "".
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts the forms ParseDate does. Empty input yields the
// zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// timestampLayouts are the accepted forms after the date part, with the
// separator normalized to 'T'.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ParseDate parses "YYYY-MM-DD" or an RFC 3339 timestamp. For timestamps
// the date part is taken literally: "2024-03-01T23:30:00-05:00" is March 1st.
// A zone-less "YYYY-MM-DD HH:MM[:SS]" is accepted too.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(time.DateOnly) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if len(s) > len(time.DateOnly) {
		switch s[len(time.DateOnly)] {
		case 'T', 't', ' ':
		default:
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		if !isTimestamp(s[:len(time.DateOnly)] + "T" + s[len(time.DateOnly)+1:]) {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
	}

	t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func isTimestamp(s string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

type datePatterns struct {
	monday monday.Locale
	short  string
	medium string
	long   string
	full   string
}

// dateTables holds Go layouts per locale; monday translates the English
// month and weekday names they produce.
var dateTables = map[string]datePatterns{
	"en-US": {monday: "en_US", short: "1/2/2006", medium: "Jan 2, 2006", long: "January 2, 2006", full: "Monday, January 2, 2006"},
	"en-GB": {monday: "en_GB", short: "02/01/2006", medium: "2 Jan 2006", long: "2 January 2006", full: "Monday 2 January 2006"},
	"nb":    {monday: "nb_NO", short: "02.01.2006", medium: "2. Jan 2006", long: "2. January 2006", full: "Monday 2. January 2006"},
	"sv":    {monday: "sv_SE", short: "2006-01-02", medium: "2 Jan 2006", long: "2 January 2006", full: "Monday 2 January 2006"},
	"da":    {monday: "da_DK", short: "02.01.2006", medium: "2. Jan 2006", long: "2. January 2006", full: "Monday 2. January 2006"},
	"es":    {monday: "es_ES", short: "2/1/2006", medium: "2 Jan 2006", long: "2 de January de 2006", full: "Monday, 2 de January de 2006"},
	"de":    {monday: "de_DE", short: "02.01.2006", medium: "02.01.2006", long: "2. January 2006", full: "Monday, 2. January 2006"},
	"fr":    {monday: "fr_FR", short: "02/01/2006", medium: "2 Jan 2006", long: "2 January 2006", full: "Monday 2 January 2006"},
}

// dateAliases maps base languages that share a table.
var dateAliases = map[string]string{
	"no": "nb",
	"nn": "nb",
}

func patternsFor(loc string) datePatterns {
	tag := locale.Tag(loc)
	if p, ok := dateTables[tag.String()]; ok {
		return p
	}
	base := locale.Base(loc)
	if p, ok := dateTables[base]; ok {
		return p
	}
	if alias, ok := dateAliases[base]; ok {
		return dateTables[alias]
	}
	// bare "en" is US; en-AU, en-IE and friends read day-first
	if base == "en" && tag.String() != "en" {
		return dateTables["en-GB"]
	}
	return dateTables[locale.Default]
}

func (p datePatterns) layout(style DateStyle) string {
	switch style {
	case DateMedium:
		return p.medium
	case DateLong:
		return p.long
	case DateFull:
		return p.full
	default:
		return p.short
	}
}

// FormatDate renders d as a calendar string for locale in the given style.
//
// Example:
//
//	d := format.Date{Year: 2024, Month: time.March, Day: 5}
//	format.FormatDate(d, "en-US", format.DateShort) // "3/5/2024"
//	format.FormatDate(d, "nb-NO", format.DateLong)  // "5. mars 2024"
func FormatDate(d Date, loc string, style DateStyle) string {
	p := patternsFor(loc)
	return monday.Format(d.Time(), p.layout(style), p.monday)
}

// FormatDateString parses s with ParseDate and formats it. Input that is not
// a date is returned unchanged so formatting never fails.
func FormatDateString(s, loc string, style DateStyle) string {
	d, err := ParseDate(s)
	if err != nil {
		return s
	}
	return FormatDate(d, loc, style)
}

// FormatTime formats the wall-clock date of t.
func FormatTime(t time.Time, loc string, style DateStyle) string {
	return FormatDate(DateOf(t), loc, style)
}
