package services

import (
	"fmt"

	"github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (config SMTPConfig) Configured() bool {
	return config.Host != "" && config.From != ""
}

// SMTPMailer sends plain-text mail through a single SMTP path.
type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (mailer *SMTPMailer) Send(to string, subject string, body string) error {
	message := mail.NewMsg()
	if err := message.From(mailer.config.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := message.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	message.Subject(subject)
	message.SetBodyString(mail.TypeTextPlain, body)

	options := []mail.Option{
		mail.WithPort(mailer.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(mailer.config.Username),
		mail.WithPassword(mailer.config.Password),
	}
	client, err := mail.NewClient(mailer.config.Host, options...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSend(message); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// NoopMailer stands in when SMTP is unconfigured.
type NoopMailer struct{}

func (NoopMailer) Send(string, string, string) error {
	return nil
}
