package domain

import "errors"

// Sentinel errors shared across the core. Higher layers match on these with
// errors.Is to pick user-facing responses; storage failures are wrapped with
// %w at the call site instead.
var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrMissingField         = errors.New("required field is missing")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
	ErrUnknownTicketType    = errors.New("unknown ticket type")
	ErrNoSelection          = errors.New("no ticket selected")
	ErrNotPriced            = errors.New("purchase has not been priced")
	ErrPaymentRequired      = errors.New("payment details not provided")
	ErrPaymentDeclined      = errors.New("payment was declined")
	ErrAlreadyConfirmed     = errors.New("purchase already confirmed")
	ErrInsufficientPoints   = errors.New("insufficient loyalty points")
	ErrRideAtCapacity       = errors.New("ride is at capacity")
	ErrRideNotFound         = errors.New("ride not found")
)
