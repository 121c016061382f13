package emails

import (
	"fmt"
	"net/smtp"
	"strings"

	"teamhub/internal/config"
	"teamhub/internal/util/logger"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the delivery strategy behind the email service.
type EmailSender interface {
	Send(to, subject, html, text string) error
}

// SMTPSender delivers through a plain SMTP relay without authentication,
// intended for development against Mailpit.
type SMTPSender struct {
	host      string
	port      string
	fromEmail string
}

func NewSMTPSender(host, port, fromEmail string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) Send(to, subject, html, text string) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	// fromEmail may be in "Name <email>" form; SMTP envelope needs the bare address
	from := s.fromEmail
	if idx := strings.Index(from, "<"); idx != -1 {
		from = strings.TrimSuffix(from[idx+1:], ">")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail, to, subject, html,
	))

	return smtp.SendMail(addr, nil, from, []string{to}, msg)
}

// ResendSender delivers through the Resend API, for production.
type ResendSender struct {
	client    *resend.Client
	fromEmail string
}

func NewResendSender(apiKey, fromEmail string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

func (s *ResendSender) Send(to, subject, html, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

// NoopSender is the fallback when no delivery backend is configured.
type NoopSender struct{}

func (s *NoopSender) Send(to, subject, html, text string) error {
	logger.GetLogger().Info("email delivery not configured, dropping message",
		"to", to, "subject", subject)
	return nil
}

func createSender() EmailSender {
	env := config.GetEnv()
	log := logger.GetLogger()

	fromEmail := env.EmailFrom
	if fromEmail == "" {
		fromEmail = "TeamHub <noreply@example.com>"
	}

	if env.SmtpHost != "" {
		log.Info("Using SMTP email sender", "host", env.SmtpHost)
		return NewSMTPSender(env.SmtpHost, env.SmtpPort, fromEmail)
	}

	if env.ResendAPIKey != "" {
		log.Info("Using Resend email sender")
		return NewResendSender(env.ResendAPIKey, fromEmail)
	}

	log.Info("No email sender configured, using noop sender")
	return &NoopSender{}
}
