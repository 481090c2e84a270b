package commands

import (
	"context"
	"errors"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
)

// SignUpCommandHandler creates accounts. Phone numbers are unique across all roles.
// Canteen accounts must name an existing vendor.
type SignUpCommandHandler struct {
	uowFactory SignUpUoWFactory
}

// NewSignUpCommandHandler creates a handler for account registration.
func NewSignUpCommandHandler(uowFactory SignUpUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new account and returns it. A phone number that is already
// registered yields StateConflictError, an unknown vendor ObjectNotFoundError.
func (h SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role(), cmd.CampusID(), cmd.VendorID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if u.Role() == user.Canteen {
		if _, err = uow.CatalogRepository().GetVendor(ctx, u.VendorID()); err != nil {
			return nil, err
		}
	}

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByPhone(ctx, u.Phone())
	switch {
	case err == nil:
		return nil, errs.NewStateConflictError("user", u.Phone(), "phone number is already registered")
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
