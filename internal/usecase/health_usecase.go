package usecase

import (
	"context"

	"consult-contact-relay/internal/domain"
	"consult-contact-relay/pkg/redis"
)

type healthUsecase struct {
	mailer domain.ContactMailer
}

func NewHealthUsecase(mailer domain.ContactMailer) domain.HealthUsecase {
	return &healthUsecase{mailer: mailer}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"mail":   "configured",
		"redis":  "disabled",
	}
	if !u.mailer.IsConfigured() {
		status["mail"] = "unconfigured"
	}
	if redis.Client() != nil {
		if err := redis.HealthCheck(ctx); err != nil {
			status["redis"] = "unreachable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}
