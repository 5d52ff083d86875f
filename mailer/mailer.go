package mailer

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Notifier delivers plain-text notifications. Delivery is fire-and-forget:
// a nil error means the message was handed to the mail server, nothing more.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPNotifier struct {
	config *Config
	dialer dialer
}

func NewSMTPNotifier(config *Config) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword),
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := n.message(to, subject, body)
	return n.dialer.DialAndSend(m)
}

func (n *SMTPNotifier) message(to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", n.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}

var _ Notifier = (*SMTPNotifier)(nil)
