package usecase

import (
	"context"
	"errors"
	"log/slog"

	"blogclient/internal/domain"
	"blogclient/internal/session"
	"blogclient/utils/validator"
)

// LoginInput is the login form's field set.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login authenticates against the API and sets the persisted hint.
// The hint's only writers are this flow and Logout.
type Login struct {
	auth     domain.AuthGateway
	cache    domain.QueryCache
	hints    domain.HintStore
	notifier domain.Notifier
	validate *validator.Validator
	logger   *slog.Logger
}

func NewLogin(a domain.AuthGateway, c domain.QueryCache, h domain.HintStore, n domain.Notifier, v *validator.Validator, l *slog.Logger) *Login {
	return &Login{auth: a, cache: c, hints: h, notifier: n, validate: v, logger: l}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) error {
	if err := uc.validate.Validate(input); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				uc.notifier.Error(msg)
			}
		}
		return err
	}

	if err := uc.auth.Login(ctx, input.Email, input.Password); err != nil {
		uc.logger.WarnContext(ctx, "login rejected", "email", input.Email, "error", err)
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

	if err := uc.hints.SetLoggedIn(true); err != nil {
		return err
	}
	// A stale anonymous whoami answer must not mask the new session.
	uc.cache.Invalidate(domain.CacheKeyAuthUser)
	return nil
}

// Logout ends the session on both sides: the server session, the
// persisted hint, the cached whoami answer, and the in-memory user.
type Logout struct {
	auth     domain.AuthGateway
	cache    domain.QueryCache
	hints    domain.HintStore
	sessions *session.Store
	notifier domain.Notifier
	logger   *slog.Logger
}

func NewLogout(a domain.AuthGateway, c domain.QueryCache, h domain.HintStore, s *session.Store, n domain.Notifier, l *slog.Logger) *Logout {
	return &Logout{auth: a, cache: c, hints: h, sessions: s, notifier: n, logger: l}
}

func (uc *Logout) Execute(ctx context.Context) error {
	if err := uc.auth.Logout(ctx); err != nil {
		uc.logger.WarnContext(ctx, "logout rejected", "error", err)
		surfaceRemoteError(uc.notifier, err)
		return err
	}

	// Drop the cached whoami answer while the hint still gates reads,
	// so no read can re-cache the old user between the two steps.
	uc.cache.Invalidate(domain.CacheKeyAuthUser)
	if err := uc.hints.SetLoggedIn(false); err != nil {
		return err
	}
	uc.sessions.Set(nil)
	return nil
}
