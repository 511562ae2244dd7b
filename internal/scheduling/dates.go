package scheduling

import (
	"time"

	"partnerevents/internal/domain"
)

// ParseDate reads a YYYY-MM-DD value as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}

// IsConsecutive reports whether b is exactly the calendar day after a.
// Only the year/month/day of each value are compared.
func IsConsecutive(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	next := time.Date(ay, am, ad+1, 0, 0, 0, 0, time.UTC)
	return next.Equal(time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC))
}

// NextDay formats the calendar day after the given YYYY-MM-DD date.
func NextDay(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, 1).Format(domain.DateLayout), nil
}
