// Package mailer sends outbound notification emails. Delivery failures
// are the caller's to log; bookings and registrations never fail because
// an email did not go out.
package mailer

import (
	"fmt"
	"net/smtp"

	"eventhub/pkg/utils"

	"go.uber.org/zap"
)

// Notifier is the outbound notification port consumed by the services.
type Notifier interface {
	Send(toEmail, subject, htmlBody string) error
}

type smtpMailer struct {
	config utils.EmailConfig
}

// New returns an SMTP-backed Notifier, or a log-only one when SMTP is
// not configured (local development).
func New(config utils.EmailConfig, log *zap.Logger) Notifier {
	if config.Host == "" {
		log.Warn("SMTP not configured, emails will only be logged")
		return &logMailer{log: log}
	}
	return &smtpMailer{config: config}
}

func (m *smtpMailer) Send(toEmail, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	msg := []byte("From: " + m.config.From + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody + "\r\n")

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", toEmail, err)
	}

	return nil
}

// logMailer writes the mail to the log instead of delivering it.
type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) Send(toEmail, subject, htmlBody string) error {
	m.log.Info("Email (not delivered, SMTP disabled)",
		zap.String("to", toEmail),
		zap.String("subject", subject),
	)
	return nil
}
