package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"nilinki/internal/pkg/logger"
)

// Mailer hands a rendered message to a delivery provider.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	host string
	port string
	from string
	pass string
}

func NewSMTPMailer(host, port, from, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, pass: pass}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	auth := smtp.PlainAuth("", m.from, m.pass, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// DevConsoleMailer logs instead of sending. Used when SMTP is not configured.
type DevConsoleMailer struct{}

func NewDevConsoleMailer() *DevConsoleMailer {
	return &DevConsoleMailer{}
}

func (m *DevConsoleMailer) Send(_ context.Context, to, subject, _ string) error {
	logger.Get().Info("[DEV-EMAIL] send",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
