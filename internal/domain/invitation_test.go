package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryInvitation_Recipients(t *testing.T) {
	tests := []struct {
		name      string
		attendees []string
		want      []string
	}{
		{"none", nil, []string{}},
		{"distinct", []string{"a", "b"}, []string{"a", "b"}},
		{"both days keeps first position", []string{"b", "a", "c", "a", "b"}, []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CountryInvitation{Name: "US", Attendees: tt.attendees, AttendeeCount: len(tt.attendees)}
			assert.Equal(t, tt.want, c.Recipients())
			assert.Len(t, c.Attendees, len(tt.attendees))
		})
	}
}
