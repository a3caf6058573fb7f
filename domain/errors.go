package domain

import "errors"

// Validation failures of the identity-creation contract. Callers match
// them with errors.Is; the HTTP layer maps them to a 400 rejection.
var (
	ErrEmailRequired = errors.New("email required")
	ErrKauIDRequired = errors.New("kau_id required")
)
