package queries

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
)

// GetActorQueryHandler maps an authenticated subject to the Actor passed into
// every lifecycle operation. It reads the account on each call so approval
// changes apply to the next request.
type GetActorQueryHandler struct {
	users UserReader
}

func NewGetActorQueryHandler(users UserReader) GetActorQueryHandler {
	return GetActorQueryHandler{users: users}
}

// Handle returns AuthorizationDeniedError for subjects without an account.
func (h GetActorQueryHandler) Handle(ctx context.Context, subject string) (user.Actor, error) {
	u, err := h.users.Get(ctx, subject)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return user.Actor{}, errs.NewAuthorizationDeniedError(subject, "use the api", "unknown account")
		}
		return user.Actor{}, err
	}
	return u.Actor(), nil
}

// GetProfileQueryHandler returns the full account record of an authenticated actor.
type GetProfileQueryHandler struct {
	users UserReader
}

func NewGetProfileQueryHandler(users UserReader) GetProfileQueryHandler {
	return GetProfileQueryHandler{users: users}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, actor user.Actor) (*user.User, error) {
	if err := actor.Validate(); err != nil {
		return nil, errs.NewAuthorizationDeniedError(actor.ID, "view profile", "actor is not identified")
	}
	return h.users.Get(ctx, actor.ID)
}
