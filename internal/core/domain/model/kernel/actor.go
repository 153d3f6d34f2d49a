package kernel

import (
	"fmt"

	"eshop/internal/pkg/errs"
)

// Role classifies the party requesting an order operation.
// The system distinguishes exactly two actor classes: customers, who own
// orders and may cancel their own pending ones, and staff, who decide the
// fate of pending orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer identifies a shop customer acting on their own orders.
	RoleCustomer

	// RoleStaff identifies shop staff acting on any order.
	RoleStaff
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleStaff:    "STAFF",
	}
}

// RoleFromString parses the persisted role token ("CUSTOMER" or "STAFF").
// Returns an error for any other input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the token for the role, or "UNKNOWN" for invalid values.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Role value is valid.
// Valid roles are RoleCustomer and RoleStaff.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleStaff {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed indicates that an Actor was not created through NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Actor is a value object identifying who requests an order operation:
// a user identity paired with its role. It carries no authorization decision
// itself; capability checks are delegated to a TransitionAuthorizer.
//
// Actor is immutable. The zero value is invalid and must be constructed via NewActor.
type Actor struct {
	userID UUID
	role   Role
}

// NewActor creates an Actor from a user identity and role.
// Both the identity and the role must be valid.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role}, nil
}

// UserID returns the identity of the acting user.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsStaff reports whether the actor belongs to the staff class.
func (a Actor) IsStaff() bool {
	return a.role == RoleStaff
}

// IsCustomer reports whether the actor belongs to the customer class.
func (a Actor) IsCustomer() bool {
	return a.role == RoleCustomer
}

// Validate checks if the Actor is properly constructed.
// Returns ErrActorIsNotConstructed for zero-value actors.
func (a Actor) Validate() error {
	if err := a.userID.Validate(); err != nil {
		return ErrActorIsNotConstructed
	}
	return a.role.Validate()
}
