package services

import (
	"context"
	"fmt"

	"partnerevents/internal/domain"
	"partnerevents/internal/scheduling"
)

// ProviderEmail names acknowledgements produced by the email dispatcher.
const ProviderEmail = "email"

type emailDispatcher struct {
	emails domain.EmailService
}

// NewEmailDispatcher returns an InvitationDispatcher that emails every invited partner directly.
func NewEmailDispatcher(emails domain.EmailService) domain.InvitationDispatcher {
	return &emailDispatcher{emails: emails}
}

func (d *emailDispatcher) Send(ctx context.Context, payload domain.InvitationPayload) (*domain.DispatchAck, error) {
	delivered := 0
	for _, c := range payload.Countries {
		endDate, err := scheduling.NextDay(c.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: start date %q: %v", domain.ErrDispatchFailed, c.Name, c.StartDate, err)
		}
		for _, to := range c.Recipients() {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: after %d emails: %v", domain.ErrDispatchFailed, delivered, err)
			}
			err := d.emails.SendPartnerInvitation(ctx, &domain.PartnerInvitationEmailData{
				Email:         to,
				Country:       c.Name,
				StartDate:     c.StartDate,
				EndDate:       endDate,
				AttendeeCount: c.AttendeeCount,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: invite %s (%s): %v", domain.ErrDispatchFailed, to, c.Name, err)
			}
			delivered++
		}
	}
	return &domain.DispatchAck{Provider: ProviderEmail, Delivered: delivered}, nil
}
