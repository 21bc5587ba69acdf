package notification

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"nilinki/internal/domain"
	"nilinki/internal/pkg/logger"
	"nilinki/internal/pkg/mailer"
)

// Service renders and sends the marketplace's transactional emails.
type Service struct {
	mail mailer.Mailer
}

func NewService(mail mailer.Mailer) *Service {
	return &Service{mail: mail}
}

// SendInquiryNotification emails a band owner about a new quote request.
func (s *Service) SendInquiryNotification(ctx context.Context, n domain.InquiryNotification) error {
	var body bytes.Buffer
	if err := inquiryTmpl.Execute(&body, n); err != nil {
		return fmt.Errorf("render inquiry email: %w", err)
	}

	subject := fmt.Sprintf("New quote request for %s", n.BandName)
	if err := s.mail.Send(ctx, n.BandEmail, subject, body.String()); err != nil {
		logger.Get().Error("failed to send inquiry notification",
			zap.String("band", n.BandName),
			zap.Error(err))
		return err
	}

	logger.Get().Info("inquiry notification sent",
		zap.String("band", n.BandName),
		zap.String("event_type", n.EventType))
	return nil
}

// SendClientConfirmation emails a client that their quote request went out.
func (s *Service) SendClientConfirmation(ctx context.Context, n domain.ClientConfirmation) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, n); err != nil {
		return fmt.Errorf("render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Your quote request to %s was sent", n.BandName)
	if err := s.mail.Send(ctx, n.ClientEmail, subject, body.String()); err != nil {
		logger.Get().Error("failed to send client confirmation",
			zap.String("band", n.BandName),
			zap.Error(err))
		return err
	}

	logger.Get().Info("client confirmation sent",
		zap.String("band", n.BandName))
	return nil
}
