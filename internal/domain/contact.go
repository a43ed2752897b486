package domain

import (
	"context"

	"consult-contact-relay/pkg/email"
	"consult-contact-relay/pkg/validation"
)

// ContactRequest represents a contact form submission
type ContactRequest = validation.Submission

// RelayResult is returned to the caller after a dispatched submission
type RelayResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Public messages returned by the relay. Transport details never reach the caller.
const (
	MsgContactSent        = "문의가 성공적으로 전송되었습니다."
	MsgContactFailed      = "문의 전송에 실패했습니다."
	MsgContactInvalid     = "입력값을 확인해주세요."
	MsgContactUnavailable = "문의 서비스를 일시적으로 사용할 수 없습니다."
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage re-validates the submission and dispatches one email
	SendContactMessage(ctx context.Context, req *ContactRequest) (*RelayResult, error)
}

// ContactMailer is the mail side of the relay
type ContactMailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
	IsConfigured() bool
	Status() email.ConfigStatus
}

// DiagnosticsUsecase reports mail configuration presence
type DiagnosticsUsecase interface {
	EmailConfig(ctx context.Context) email.ConfigStatus
}

// HealthUsecase reports dependency status
type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}
