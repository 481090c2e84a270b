package user

import (
	"fmt"

	"studel/internal/pkg/errs"
)

// Role is the part a user plays on the platform. It decides which order
// transitions the user may trigger.
type Role int

const (
	// UnknownRole is the zero value and never authorizes anything.
	UnknownRole Role = iota
	Customer
	Runner
	Canteen
	Admin
)

var roleNames = map[Role]string{
	Customer: "Customer",
	Runner:   "Runner",
	Canteen:  "Canteen",
	Admin:    "Admin",
}

// Roles lists every valid role in display order.
func Roles() []Role {
	return []Role{Customer, Runner, Canteen, Admin}
}

// ParseRole maps the wire name of a role ("Customer", "Runner", "Canteen", "Admin") to a Role.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects UnknownRole and out of range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// NeedsApproval reports whether accounts of role r start unapproved and wait
// for an admin.
func (r Role) NeedsApproval() bool {
	return r == Runner || r == Canteen
}

// SelfRegistrable reports whether role r may be chosen at public sign-up.
func (r Role) SelfRegistrable() bool {
	return r == Customer || r == Runner || r == Canteen
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}
