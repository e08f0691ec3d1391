// Package contact relays messages from the portfolio contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrMailerDisabled is returned when no mail relay is configured and the
// form is intentionally inert.
var ErrMailerDisabled = errors.New("contact mailer disabled")

// Form is the contact form submission.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required,max=100"`
	Email   string `form:"email" json:"email" binding:"required,email,max=254"`
	Message string `form:"message" json:"message" binding:"required,max=5000"`
}

type Mailer interface {
	Send(ctx context.Context, f Form) error
}

// InertMailer accepts nothing.
type InertMailer struct{}

func (InertMailer) Send(context.Context, Form) error { return ErrMailerDisabled }

// SMTPConfig holds the relay settings. User and Password are required.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends each submission as a plain-text email with Reply-To set to
// the visitor.
type SMTPMailer struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// New picks the SMTP relay when credentials are present and the inert mailer
// otherwise.
func New(cfg SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return InertMailer{}
	}
	return NewSMTPMailer(cfg)
}

func (m *SMTPMailer) Send(ctx context.Context, f Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := Compose(m.cfg.User, m.cfg.To, f)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := m.send(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

// Compose builds the RFC 822 message for a submission.
func Compose(from, to string, f Form) []byte {
	name := headerSafe(f.Name)
	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, f.Email, f.Message)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(f.Email) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}
