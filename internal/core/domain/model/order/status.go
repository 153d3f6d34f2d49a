package order

import (
	"fmt"

	"eshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Reserved ──┬──> Validated   (staff, stock permanently consumed)
//	           ├──> Rejected    (staff, stock released)
//	           └──> Canceled    (customer, stock released)
//
// All three right-hand states are terminal: no event moves an order out of
// them. Status is a value object; its string form is the exact token
// persisted and exposed externally.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Reserved is the initial status: the order is pending a staff decision
	// and stock for every line item is held.
	Reserved

	// Validated indicates staff accepted the order. Terminal; the held stock
	// is permanently consumed and never released.
	Validated

	// Canceled indicates the owning customer withdrew the order. Terminal;
	// the held stock has been released.
	Canceled

	// Rejected indicates staff declined the order. Terminal; the held stock
	// has been released.
	Rejected
)

// getStatusStrings returns a map of Status values to their persisted tokens.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Reserved:  "RESERVED",
		Validated: "VALIDATED",
		Canceled:  "CANCELED",
		Rejected:  "REJECTED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Reserved:  "RESERVED",
		Validated: "VALIDATED",
		Canceled:  "CANCELED",
		Rejected:  "REJECTED",
	}
}

// StatusFromString parses a persisted status token.
// The four accepted tokens are exactly "RESERVED", "VALIDATED", "CANCELED",
// and "REJECTED"; String() and StatusFromString round-trip them unchanged.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Reserved, Validated, Canceled, Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted token for the status.
//
// Returns "RESERVED", "VALIDATED", "CANCELED", or "REJECTED" for valid
// statuses and "UNKNOWN" for invalid values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
// Orders in a terminal status are immutable.
func (s Status) IsTerminal() bool {
	return s == Validated || s == Canceled || s == Rejected
}

// ReleasesStock reports whether entering this status returns the order's
// held stock to the ledger. Validation consumes the stock instead.
func (s Status) ReleasesStock() bool {
	return s == Canceled || s == Rejected
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to target. The only legal moves are from Reserved to one of
// the three terminal statuses.
func (s Status) CanTransitionTo(target Status) bool {
	return s == Reserved && target.IsTerminal()
}
