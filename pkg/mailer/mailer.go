package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"go-secadmin-ws/internal/config"
)

// Mailer sends a single plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

// New returns an SMTP-backed mailer, or a log-only one when no SMTP host is
// configured (local development, tests).
func New(cfg config.SMTP) Mailer {
	if cfg.Host == "" {
		return &logMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{}

func (m *logMailer) Send(to, subject, body string) error {
	log.Printf("mailer (log-only): to=%s subject=%q\n%s", to, subject, body)
	return nil
}
