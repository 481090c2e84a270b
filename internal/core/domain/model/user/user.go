// Package user models platform accounts and the Actor value passed into every
// lifecycle operation.
//
// Business rules:
//   - Every user has a display name, a unique phone number and exactly one Role
//   - Runners must carry a campus id and start unapproved; an admin approves them
//   - Canteen staff are bound to exactly one vendor and, like runners, start unapproved
//   - Customers and admins are approved at creation
//
// Credentials are not modelled here: authentication is delegated to an external
// identity provider and the service only maps an authenticated subject to a User.
package user

import (
	"errors"
	"strings"

	"studel/internal/pkg/errs"
	"studel/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not built via NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a platform account.
type User struct {
	id         string
	name       string
	email      string
	phone      string
	role       Role
	campusID   string
	vendorID   string
	isApproved bool

	guard guard.ConstructorGuard
}

// NewUser registers a new account. Runners and canteen staff start unapproved,
// customers and admins are approved immediately.
//
// Example:
//
//	u, err := user.NewUser(id, "Charlie Brown", "", "3333333333", user.Runner, "RUN001", "")
//	if err != nil {
//	    return err // missing campus id, empty phone, ...
//	}
//	u.IsApproved() // false until an admin calls Approve
func NewUser(id, name, email, phone string, role Role, campusID, vendorID string) (*User, error) {
	return RestoreUser(id, name, email, phone, role, campusID, vendorID, !role.NeedsApproval())
}

// RestoreUser rebuilds a persisted account, re-checking every invariant.
func RestoreUser(id, name, email, phone string, role Role, campusID, vendorID string, isApproved bool) (*User, error) {
	u := &User{
		id:         strings.TrimSpace(id),
		name:       strings.TrimSpace(name),
		email:      strings.TrimSpace(email),
		phone:      strings.TrimSpace(phone),
		role:       role,
		campusID:   strings.TrimSpace(campusID),
		vendorID:   strings.TrimSpace(vendorID),
		isApproved: isApproved || !role.NeedsApproval(),
		guard:      guard.NewConstructorGuard(),
	}

	var problems []error
	if u.id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("id"))
	}
	if u.name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if u.phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := role.Validate(); err != nil {
		problems = append(problems, err)
	}
	if role == Runner && u.campusID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("campusId"))
	}
	if role == Canteen && u.vendorID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("vendorId"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	if role != Runner {
		u.campusID = ""
	}
	if role != Canteen {
		u.vendorID = ""
	}
	return u, nil
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() string       { return u.id }
func (u *User) Name() string     { return u.name }
func (u *User) Email() string    { return u.email }
func (u *User) Phone() string    { return u.phone }
func (u *User) Role() Role       { return u.role }
func (u *User) CampusID() string { return u.campusID }
func (u *User) VendorID() string { return u.vendorID }
func (u *User) IsApproved() bool { return u.isApproved }

// Approve lets a runner take deliveries or a canteen account work its vendor's
// queue. Approving an approved account is a no-op; approving any other role is
// a validation error.
func (u *User) Approve() error {
	if !u.role.NeedsApproval() {
		return errs.NewValueIsInvalidErrorWithCause("runnerId", errors.New("only runners and canteen staff require approval"))
	}
	u.isApproved = true
	return nil
}

// Actor returns the acting-party view of the user.
func (u *User) Actor() Actor {
	return Actor{
		ID:         u.id,
		Name:       u.name,
		Role:       u.role,
		IsApproved: u.isApproved,
		VendorID:   u.vendorID,
	}
}
