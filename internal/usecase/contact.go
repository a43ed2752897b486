package usecase

import (
	"context"
	"errors"
	"net/http"

	"consult-contact-relay/internal/domain"
	"consult-contact-relay/pkg/apperror"
	"consult-contact-relay/pkg/email"
	"consult-contact-relay/pkg/logger"
	"consult-contact-relay/pkg/validation"
)

type contactUsecase struct {
	mailer    domain.ContactMailer
	validator *validation.Validator
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer domain.ContactMailer, validator *validation.Validator) domain.ContactUsecase {
	return &contactUsecase{
		mailer:    mailer,
		validator: validator,
	}
}

// SendContactMessage validates the contact request and sends the email.
// Browser-side checks are not trusted: every field, consent included, is checked again here.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.RelayResult, error) {
	if req == nil {
		return nil, apperror.Internal(errors.New("nil contact request"))
	}

	sub := req.Trimmed()
	if res := uc.validator.Validate(sub); !res.Valid {
		msg := domain.MsgContactInvalid
		if res.ConsentMissing {
			msg = validation.MsgConsentRequired
		}
		return nil, apperror.BadRequest(msg).WithDetails(res.FieldErrors)
	}

	// Check if email service is configured
	if !uc.mailer.IsConfigured() {
		return nil, apperror.ServiceUnavailable(domain.MsgContactUnavailable, email.ErrNotConfigured)
	}

	data := email.ContactEmailData{
		Name:      sub.Name,
		Phone:     sub.Phone,
		Email:     sub.Email,
		Message:   sub.Message,
		Agreement: sub.Agreement,
	}

	if err := uc.mailer.SendContactEmail(ctx, data); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return nil, apperror.ServiceUnavailable(domain.MsgContactUnavailable, err)
		}
		return nil, apperror.New(http.StatusInternalServerError, domain.MsgContactFailed, err)
	}

	logger.Log.InfoContext(ctx, "contact submission dispatched", "phone_policy", uc.validator.Policy())

	return &domain.RelayResult{OK: true, Message: domain.MsgContactSent}, nil
}
