package services

import (
	"context"
	"fmt"
	"log/slog"

	"partnerevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendPartnerInvitation sends one partner the invitation for their country's event window.
func (s *emailService) SendPartnerInvitation(ctx context.Context, data *domain.PartnerInvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("partner invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(domain.TemplatePartnerInvitation, data)
	if err != nil {
		return fmt.Errorf("failed to render invitation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	s.logger.DebugContext(ctx, "invitation email sent", "to", data.Email, "country", data.Country)
	return nil
}
