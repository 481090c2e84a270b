package user

import "studel/internal/pkg/errs"

// Actor is the acting party of a single engine call. It is resolved by the caller
// (for HTTP, from the bearer token) and passed explicitly into every operation;
// the engine keeps no session state of its own.
type Actor struct {
	ID         string
	Name       string
	Role       Role
	IsApproved bool
	// VendorID is set for canteen staff and scopes them to one vendor's queue.
	VendorID string
}

// Validate checks that the actor carries an identity and a known role.
func (a Actor) Validate() error {
	if a.ID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	return a.Role.Validate()
}

// Is reports whether the actor holds role r.
func (a Actor) Is(r Role) bool {
	return a.Role == r
}

// Require returns AuthorizationDenied unless the actor is valid and holds role r.
// Canteen staff must also be approved and bound to a vendor.
// action names the operation for the error message.
func (a Actor) Require(r Role, action string) error {
	if err := a.Validate(); err != nil {
		return errs.NewAuthorizationDeniedError(a.ID, action, "actor is not identified")
	}
	if a.Role != r {
		return errs.NewAuthorizationDeniedError(a.ID, action, "requires role "+r.String()+", actor is "+a.Role.String())
	}
	if r == Canteen {
		if a.VendorID == "" {
			return errs.NewAuthorizationDeniedError(a.ID, action, "canteen account has no vendor")
		}
		if !a.IsApproved {
			return errs.NewAuthorizationDeniedError(a.ID, action, "canteen account is not approved")
		}
	}
	return nil
}
