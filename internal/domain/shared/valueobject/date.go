package valueobject

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the ISO calendar date form used everywhere dates cross a
// boundary (API, database, logs)
const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone. Keeping the
// time component out of the type removes the whole class of off-by-one-day
// bugs that come from interpreting midnight timestamps in different zones.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a Date, validating that the combination is a real calendar
// day (e.g. rejects Feb 30)
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate creates a Date and panics on invalid input. Intended for tests and
// compile-time-known constants.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD)
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// DateOf extracts the calendar date from a timestamp, in the timestamp's
// location
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today returns the current calendar date in local time
func Today() Date {
	return DateOf(time.Now())
}

// Year returns the year
func (d Date) Year() int { return d.year }

// Month returns the month
func (d Date) Month() time.Month { return d.month }

// Day returns the day of month
func (d Date) Day() int { return d.day }

// IsZero reports whether the date is the zero value
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// daysIn returns the number of days in the given month
func daysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths returns the date advanced by k whole months. When the original
// day does not exist in the target month the day is clamped to the last valid
// day (Jan 31 + 1 month -> Feb 28, or Feb 29 in leap years).
func (d Date) AddMonths(k int) Date {
	// first-of-month arithmetic lets time.Date normalize the year/month pair,
	// including negative offsets, without the day spilling over
	anchor := time.Date(d.year, d.month+time.Month(k), 1, 0, 0, 0, 0, time.UTC)
	day := d.day
	if last := daysIn(anchor.Year(), anchor.Month()); day > last {
		day = last
	}
	return Date{year: anchor.Year(), month: anchor.Month(), day: day}
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether both dates are the same calendar day
func (d Date) Equal(other Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

// ToTime converts the date to a timestamp at midnight in the given location.
// Only presentation boundaries should need this.
func (d Date) ToTime(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// String returns the ISO form YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for database storage as YYYY-MM-DD
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. Postgres DATE columns arrive as time.Time,
// SQLite as text.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		// tolerate datetime strings by taking the date prefix
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
