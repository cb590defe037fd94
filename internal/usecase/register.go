package usecase

import (
	"context"
	"errors"
	"log/slog"

	"blogclient/internal/domain"
	"blogclient/utils/validator"
)

// RegisterInput is the registration form's field set.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

// Register creates a new account. It never touches the hint or the
// cached whoami answer; the new user still logs in afterwards.
type Register struct {
	auth     domain.AuthGateway
	notifier domain.Notifier
	validate *validator.Validator
	logger   *slog.Logger
}

func NewRegister(a domain.AuthGateway, n domain.Notifier, v *validator.Validator, l *slog.Logger) *Register {
	return &Register{auth: a, notifier: n, validate: v, logger: l}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) error {
	if err := uc.validate.Validate(input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				uc.notifier.Error(msg)
			}
		}
		return err
	}

	reg := domain.Registration{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
	}
	if err := uc.auth.Register(ctx, reg); err != nil {
		uc.logger.WarnContext(ctx, "registration rejected", "email", input.Email, "error", err)
		var remote *domain.RemoteError
		if errors.As(err, &remote) {
			for _, msg := range remote.Messages {
				uc.notifier.Error(msg)
			}
		} else {
			uc.notifier.Error("Something went wrong, please try again")
		}
		return err
	}

	uc.notifier.Success("Account created, please log in")
	return nil
}
