package sessionlog

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the given ID.
	ErrSessionNotFound = errors.New("sessionlog.not_found")

	// ErrInvalidSession indicates a malformed session or a fingerprint mismatch.
	ErrInvalidSession = errors.New("sessionlog.invalid")

	// ErrInvalidUserID indicates an empty user identifier.
	ErrInvalidUserID = errors.New("sessionlog.invalid_user_id")
)
