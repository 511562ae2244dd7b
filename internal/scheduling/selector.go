package scheduling

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"partnerevents/internal/domain"
)

type datedAttendees struct {
	day    time.Time
	raw    string
	emails []string
}

// SelectBestWindows returns, per country, the consecutive-day pair with the most attendees.
// Ties go to the earliest window. Countries without any consecutive pair are absent.
// An unparseable date fails the whole selection with a *domain.DataFormatError.
func SelectBestWindows(index domain.AttendanceIndex) (map[string]domain.DateWindow, error) {
	countries := make([]string, 0, len(index))
	for country := range index {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	// one slot per country; goroutines never share a slot
	windows := make([]*domain.DateWindow, len(countries))
	var g errgroup.Group
	for i, country := range countries {
		g.Go(func() error {
			w, err := bestWindow(country, index[country])
			if err != nil {
				return err
			}
			windows[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]domain.DateWindow, len(countries))
	for _, w := range windows {
		if w != nil {
			out[w.Country] = *w
		}
	}
	return out, nil
}

func bestWindow(country string, byDate map[string][]string) (*domain.DateWindow, error) {
	days := make([]datedAttendees, 0, len(byDate))
	for raw, emails := range byDate {
		day, err := ParseDate(raw)
		if err != nil {
			return nil, &domain.DataFormatError{Country: country, Date: raw, Err: err}
		}
		days = append(days, datedAttendees{day: day, raw: raw, emails: emails})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	best, bestCount := -1, 0
	for i := 0; i+1 < len(days); i++ {
		if !IsConsecutive(days[i].day, days[i+1].day) {
			continue
		}
		if n := len(days[i].emails) + len(days[i+1].emails); best < 0 || n > bestCount {
			best, bestCount = i, n
		}
	}
	if best < 0 {
		return nil, nil
	}

	attendees := make([]string, 0, bestCount)
	attendees = append(attendees, days[best].emails...)
	attendees = append(attendees, days[best+1].emails...)
	return &domain.DateWindow{
		Country:       country,
		StartDate:     days[best].raw,
		AttendeeCount: len(attendees),
		Attendees:     attendees,
	}, nil
}
