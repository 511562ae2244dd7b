package scheduling

import (
	"sort"

	"partnerevents/internal/domain"
)

// BuildPayload turns selected windows into the invitation payload, ordered by country name.
func BuildPayload(windows map[string]domain.DateWindow) domain.InvitationPayload {
	countries := make([]domain.CountryInvitation, 0, len(windows))
	for _, w := range windows {
		countries = append(countries, domain.CountryInvitation{
			Name:          w.Country,
			StartDate:     w.StartDate,
			AttendeeCount: w.AttendeeCount,
			Attendees:     w.Attendees,
		})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	return domain.InvitationPayload{Countries: countries}
}

// SkippedCountries lists, in order, the indexed countries that produced no window.
func SkippedCountries(index domain.AttendanceIndex, windows map[string]domain.DateWindow) []string {
	skipped := []string{}
	for country := range index {
		if _, ok := windows[country]; !ok {
			skipped = append(skipped, country)
		}
	}
	sort.Strings(skipped)
	return skipped
}
