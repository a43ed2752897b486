package email

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured indicates the mail account or admin address is missing.
	ErrNotConfigured = errors.New("email service is not configured")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no From address was provided.
	ErrNoSender = errors.New("email must have a sender")
)

// Message represents a fully composed email ready for a transport.
type Message struct {
	From     string   // Sender address, bound to the mail account
	FromName string   // Optional display name
	To       []string // Recipients (at least one required)
	ReplyTo  string   // Reply-to address
	Subject  string
	HTML     string
}

// Validate checks the fields every transport needs.
func (m *Message) Validate() error {
	if m.From == "" {
		return ErrNoSender
	}
	if len(m.To) == 0 {
		return ErrNoRecipient
	}
	return nil
}

// Sender is implemented by mail transports. Send delivers one message
// and returns the transport error unchanged (wrapped) on failure.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
