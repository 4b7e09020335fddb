package service

import "errors"

// Domain errors returned by the services. Handlers map them to HTTP statuses.
var (
	// ErrCosmeticNotFound means the catalog has no cosmetic with the given name.
	ErrCosmeticNotFound = errors.New("cosmetic not found")

	// ErrNotOnline means the caller is not in an active party.
	ErrNotOnline = errors.New("user is not in an active party")

	// ErrMemberNotFound means the caller's party has no entry for their account.
	ErrMemberNotFound = errors.New("member not found in party")
)
