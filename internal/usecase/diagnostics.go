package usecase

import (
	"context"

	"consult-contact-relay/internal/domain"
	"consult-contact-relay/pkg/email"
)

type diagnosticsUsecase struct {
	mailer domain.ContactMailer
}

// NewDiagnosticsUsecase creates the configuration sanity-check usecase
func NewDiagnosticsUsecase(mailer domain.ContactMailer) domain.DiagnosticsUsecase {
	return &diagnosticsUsecase{mailer: mailer}
}

// EmailConfig returns which mail settings are loaded; the credential is reduced to its length
func (u *diagnosticsUsecase) EmailConfig(ctx context.Context) email.ConfigStatus {
	return u.mailer.Status()
}
