package domain

import (
	"errors"
	"fmt"
)

// DateLayout is the wire format of every availability date.
const DateLayout = "2006-01-02"

// ErrDataFormat is matched by every *DataFormatError.
var ErrDataFormat = errors.New("invalid date format")

// AttendanceIndex maps country -> date -> partner emails, in the order partners were processed.
type AttendanceIndex map[string]map[string][]string

// DateWindow is the winning two-day window for a country.
// swagger:model DateWindow
type DateWindow struct {
	Country       string   `json:"country"`
	StartDate     string   `json:"startDate"`
	AttendeeCount int      `json:"attendeeCount"`
	Attendees     []string `json:"attendees"`
}

// DataFormatError reports a date value that cannot be read as a calendar date.
type DataFormatError struct {
	Country string
	Date    string
	Err     error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("country %q: date %q: %v", e.Country, e.Date, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataFormat) match regardless of the parse cause.
func (e *DataFormatError) Is(target error) bool {
	return target == ErrDataFormat
}
