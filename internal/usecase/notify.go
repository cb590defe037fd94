package usecase

import (
	"errors"

	"blogclient/internal/domain"
)

// surfaceRemoteError renders a failed submission as notifications, one
// per server message. Authorization failures are left silent here:
// they resolve through the guard as a redirect, not a toast. Transport
// failures collapse to a single generic message.
func surfaceRemoteError(n domain.Notifier, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrForbidden) {
		return
	}

	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		for _, msg := range remote.Messages {
			n.Error(msg)
		}
		return
	}
	n.Error("Something went wrong, please try again")
}
