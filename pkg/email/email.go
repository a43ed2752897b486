package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"consult-contact-relay/config"
)

// EmailService composes contact notifications and hands them to a transport
type EmailService struct {
	sender    Sender
	transport string
	username  string
	password  string
	fromEmail string
	fromName  string
	toEmail   string
	timeout   time.Duration
}

// ConfigStatus describes which mail settings are present. It never
// carries the credential itself.
type ConfigStatus struct {
	User       string `json:"user"`
	PassLength int    `json:"passLength"`
	Admin      string `json:"admin"`
	Transport  string `json:"transport"`
	Configured bool   `json:"configured"`
}

// NewEmailService creates the email service with the transport selected in config
func NewEmailService(cfg *config.Config) *EmailService {
	var sender Sender
	password := cfg.EmailPass
	switch cfg.MailTransport {
	case config.TransportResend:
		password = cfg.ResendAPIKey
		sender = NewResendSender(cfg.ResendAPIKey)
	default:
		sender = NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
		})
	}

	svc := NewEmailServiceWithSender(sender, cfg.EmailUser, cfg.AdminEmail)
	svc.transport = cfg.MailTransport
	svc.username = cfg.EmailUser
	svc.password = password
	svc.fromName = cfg.MailFromName
	if password == "" {
		// A transport without its credential can only fail
		svc.sender = nil
	}
	if cfg.MailTimeoutSeconds > 0 {
		svc.timeout = time.Duration(cfg.MailTimeoutSeconds) * time.Second
	}
	return svc
}

// NewEmailServiceWithSender wires an explicit transport. The mail account
// doubles as the From address, as the SMTP login requires.
func NewEmailServiceWithSender(sender Sender, fromEmail, toEmail string) *EmailService {
	return &EmailService{
		sender:    sender,
		transport: "custom",
		username:  fromEmail,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SetSender replaces the transport, keeping the account settings
func (s *EmailService) SetSender(sender Sender) {
	s.sender = sender
}

// ComposeContactEmail builds the admin notification for one submission.
// From and To come from configuration only; the submitter address is used
// as Reply-To so the administrator can answer directly.
func (s *EmailService) ComposeContactEmail(data ContactEmailData) (*Message, error) {
	html, err := RenderContactHTML(data)
	if err != nil {
		return nil, err
	}

	msg := &Message{
		From:     s.fromEmail,
		FromName: s.fromName,
		To:       []string{s.toEmail},
		Subject:  ContactSubject(data.Name),
		HTML:     html,
	}
	if !strings.ContainsAny(data.Email, "\r\n") {
		msg.ReplyTo = data.Email
	}
	return msg, nil
}

// SendContactEmail sends a contact form email to the configured recipient
func (s *EmailService) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	msg, err := s.ComposeContactEmail(data)
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if a credentialed transport, the account and the admin address are set
func (s *EmailService) IsConfigured() bool {
	return s.sender != nil && s.fromEmail != "" && s.toEmail != ""
}

// Status reports configuration presence for diagnostics
func (s *EmailService) Status() ConfigStatus {
	return ConfigStatus{
		User:       s.username,
		PassLength: len(s.password),
		Admin:      s.toEmail,
		Transport:  s.transport,
		Configured: s.IsConfigured(),
	}
}
