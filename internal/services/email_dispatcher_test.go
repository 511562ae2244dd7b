package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partnerevents/internal/domain"
	"partnerevents/internal/scheduling"
)

type mockMailer struct {
	sent    []string
	failFor string
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if to == m.failFor {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

type mockRenderer struct {
	data []any
	err  error
}

func (m *mockRenderer) Render(templateName string, data any) (string, string, string, error) {
	if m.err != nil {
		return "", "", "", m.err
	}
	m.data = append(m.data, data)
	d := data.(*domain.PartnerInvitationEmailData)
	return templateName + ":" + d.Country, "<p>html</p>", "text", nil
}

func TestEmailDispatcher_Send(t *testing.T) {
	mailer := &mockMailer{}
	renderer := &mockRenderer{}
	disp := NewEmailDispatcher(NewEmailService(mailer, renderer, testLogger()))

	ack, err := disp.Send(context.Background(), domain.InvitationPayload{Countries: []domain.CountryInvitation{
		{Name: "France", StartDate: "2024-02-29", AttendeeCount: 2, Attendees: []string{"x@fr.com", "y@fr.com"}},
		{Name: "Ireland", StartDate: "2024-12-31", AttendeeCount: 1, Attendees: []string{"i@ie.com"}},
	}})

	require.NoError(t, err)
	assert.Equal(t, &domain.DispatchAck{Provider: ProviderEmail, Delivered: 3}, ack)
	assert.Equal(t, []string{
		"x@fr.com|invitation:France",
		"y@fr.com|invitation:France",
		"i@ie.com|invitation:Ireland",
	}, mailer.sent)
	require.Len(t, renderer.data, 3)
	first := renderer.data[0].(*domain.PartnerInvitationEmailData)
	assert.Equal(t, "2024-03-01", first.EndDate)
	assert.Equal(t, 2, first.AttendeeCount)
	last := renderer.data[2].(*domain.PartnerInvitationEmailData)
	assert.Equal(t, "2025-01-01", last.EndDate)

	t.Run("partner free on both days is invited once", func(t *testing.T) {
		records := []domain.PartnerRecord{
			{Email: "a@x.com", Country: "US", AvailableDates: []string{"2024-01-01", "2024-01-02"}},
			{Email: "b@x.com", Country: "US", AvailableDates: []string{"2024-01-02"}},
		}
		windows, err := scheduling.SelectBestWindows(scheduling.IndexAttendance(records))
		require.NoError(t, err)
		payload := scheduling.BuildPayload(windows)
		require.Equal(t, []string{"a@x.com", "a@x.com", "b@x.com"}, payload.Countries[0].Attendees)

		mailer := &mockMailer{}
		ack, err := NewEmailDispatcher(NewEmailService(mailer, &mockRenderer{}, testLogger())).Send(context.Background(), payload)

		require.NoError(t, err)
		assert.Equal(t, 2, ack.Delivered)
		assert.Equal(t, []string{"a@x.com|invitation:US", "b@x.com|invitation:US"}, mailer.sent)
	})
}

func TestEmailDispatcher_Failures(t *testing.T) {
	payload := domain.InvitationPayload{Countries: []domain.CountryInvitation{
		{Name: "France", StartDate: "2024-03-01", AttendeeCount: 2, Attendees: []string{"x@fr.com", "y@fr.com"}},
	}}

	t.Run("mailer error", func(t *testing.T) {
		mailer := &mockMailer{failFor: "y@fr.com"}
		disp := NewEmailDispatcher(NewEmailService(mailer, &mockRenderer{}, testLogger()))

		ack, err := disp.Send(context.Background(), payload)

		require.Error(t, err)
		assert.Nil(t, ack)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("render error", func(t *testing.T) {
		disp := NewEmailDispatcher(NewEmailService(&mockMailer{}, &mockRenderer{err: errors.New("bad template")}, testLogger()))

		_, err := disp.Send(context.Background(), payload)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad template")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mailer := &mockMailer{}
		disp := NewEmailDispatcher(NewEmailService(mailer, &mockRenderer{}, testLogger()))

		_, err := disp.Send(ctx, payload)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.Empty(t, mailer.sent)
	})

	t.Run("malformed start date", func(t *testing.T) {
		disp := NewEmailDispatcher(NewEmailService(&mockMailer{}, &mockRenderer{}, testLogger()))

		_, err := disp.Send(context.Background(), domain.InvitationPayload{Countries: []domain.CountryInvitation{
			{Name: "France", StartDate: "March 1st", Attendees: []string{"x@fr.com"}},
		}})

		assert.True(t, errors.Is(err, domain.ErrDispatchFailed))
		assert.False(t, errors.Is(err, domain.ErrDataFormat))
		assert.Contains(t, err.Error(), "March 1st")
	})
}

func TestEmailService_NilData(t *testing.T) {
	svc := NewEmailService(&mockMailer{}, &mockRenderer{}, testLogger())
	assert.Error(t, svc.SendPartnerInvitation(context.Background(), nil))
}
