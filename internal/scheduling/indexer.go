// Package scheduling groups partner availability and picks each country's best two-day window.
package scheduling

import "partnerevents/internal/domain"

// IndexAttendance groups partner emails by country and date.
// Emails are appended in record order; duplicates are kept and dates are not validated.
func IndexAttendance(records []domain.PartnerRecord) domain.AttendanceIndex {
	idx := make(domain.AttendanceIndex)
	for _, rec := range records {
		byDate, ok := idx[rec.Country]
		if !ok {
			byDate = make(map[string][]string)
			idx[rec.Country] = byDate
		}
		for _, date := range rec.AvailableDates {
			byDate[date] = append(byDate[date], rec.Email)
		}
	}
	return idx
}
