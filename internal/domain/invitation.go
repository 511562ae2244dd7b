package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDispatchFailed is returned when the invitation payload could not be delivered.
var ErrDispatchFailed = errors.New("invitation dispatch failed")

// CountryInvitation is one country's entry in the invitation payload.
// swagger:model CountryInvitation
type CountryInvitation struct {
	Name          string   `json:"name"`
	StartDate     string   `json:"startDate"`
	AttendeeCount int      `json:"attendeeCount"`
	Attendees     []string `json:"attendees"`
}

// Recipients returns the distinct attendee emails in first-seen order.
// Attendees lists a partner free on both days twice; each person is invited once.
func (c CountryInvitation) Recipients() []string {
	seen := make(map[string]struct{}, len(c.Attendees))
	out := make([]string, 0, len(c.Attendees))
	for _, email := range c.Attendees {
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// InvitationPayload is the body sent to the invitation recipient.
// swagger:model InvitationPayload
type InvitationPayload struct {
	Countries []CountryInvitation `json:"countries"`
}

// DispatchAck is the acknowledgement returned by an InvitationDispatcher.
// Delivered counts distinct partners invited, summed over countries.
// swagger:model DispatchAck
type DispatchAck struct {
	Provider   string `json:"provider"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Delivered  int    `json:"delivered"`
}

// InvitationDispatcher transmits a computed payload to its recipient.
type InvitationDispatcher interface {
	Send(ctx context.Context, payload InvitationPayload) (*DispatchAck, error)
}

// HostEventPlan is the outcome of selecting windows for one run, before dispatch.
// swagger:model HostEventPlan
type HostEventPlan struct {
	RunID            string            `json:"run_id"`
	PartnerCount     int               `json:"partner_count"`
	Payload          InvitationPayload `json:"payload"`
	SkippedCountries []string          `json:"skipped_countries"`
	PlannedAt        time.Time         `json:"planned_at"`
}

// HostEventResult bundles a plan with the dispatcher's acknowledgement.
// Ack is nil when there was nothing to dispatch.
// swagger:model HostEventResult
type HostEventResult struct {
	Plan *HostEventPlan `json:"plan"`
	Ack  *DispatchAck   `json:"ack"`
}

// HostEventService selects event windows and issues invitations.
type HostEventService interface {
	// Plan fetches partners and computes the invitation payload without sending it.
	Plan(ctx context.Context) (*HostEventPlan, error)
	// Run plans and then dispatches the payload.
	Run(ctx context.Context) (*HostEventResult, error)
}
