package commands

import (
	"errors"
	"fmt"
	"strings"

	"studel/internal/core/domain/model/user"
	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

// SignUpCommand registers a new account. Credentials are handled by the identity
// provider; this only records the profile the platform needs.
type SignUpCommand struct {
	userID   string
	name     string
	email    string
	phone    string
	role     user.Role
	campusID string
	vendorID string

	guard guard.ConstructorGuard
}

// NewSignUpCommand checks the fields every role needs. Admin accounts are never
// self-registered. Role-specific rules (campus id for runners, vendor for
// canteen staff) are enforced by user.NewUser.
func NewSignUpCommand(userID, name, email, phone string, role user.Role, campusID, vendorID string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		userID:   strings.TrimSpace(userID),
		name:     strings.TrimSpace(name),
		email:    strings.TrimSpace(email),
		phone:    strings.TrimSpace(phone),
		role:     role,
		campusID: campusID,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}

	var problems []error
	if cmd.userID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id"))
	}
	if cmd.name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if cmd.phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := role.Validate(); err != nil {
		problems = append(problems, err)
	} else if !role.SelfRegistrable() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%s accounts cannot be self-registered", role)))
	}
	if err := errors.Join(problems...); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) UserID() string   { return c.userID }
func (c SignUpCommand) Name() string     { return c.name }
func (c SignUpCommand) Email() string    { return c.email }
func (c SignUpCommand) Phone() string    { return c.phone }
func (c SignUpCommand) Role() user.Role  { return c.role }
func (c SignUpCommand) CampusID() string { return c.campusID }
func (c SignUpCommand) VendorID() string { return c.vendorID }
