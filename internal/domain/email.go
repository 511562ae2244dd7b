package domain

import "context"

// TemplatePartnerInvitation is the template used for partner invitation emails.
const TemplatePartnerInvitation = "invitation"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// PartnerInvitationEmailData holds data for a single partner's invitation email.
type PartnerInvitationEmailData struct {
	Email         string
	Country       string
	StartDate     string
	EndDate       string
	AttendeeCount int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendPartnerInvitation(ctx context.Context, data *PartnerInvitationEmailData) error
}
