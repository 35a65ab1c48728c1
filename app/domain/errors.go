package domain

import "errors"

// Error taxonomy shared by every layer. Store-level failures are
// translated into these at the postgres boundary; usecases raise them
// directly for policy violations.
var (
	// ErrNotFound is returned when the referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned on a uniqueness violation, e.g. a
	// duplicate username at signup.
	ErrAlreadyExists = errors.New("already exists")

	// ErrExpired is returned when a time-bounded token or session is
	// past its validity window.
	ErrExpired = errors.New("expired")

	// ErrForbidden is returned on a policy violation, e.g. granting a
	// wildcard-account role to a non-admin identity.
	ErrForbidden = errors.New("forbidden")

	// ErrAuthFailed is returned for any credential rejection. It is
	// deliberately generic: callers must not be able to tell "no such
	// user" from "wrong password" from "locked".
	ErrAuthFailed = errors.New("authentication failed")

	// ErrTOTPRequired is returned when the identity has two-factor
	// enabled and no code was supplied.
	ErrTOTPRequired = errors.New("totp code required")

	// ErrUnauthorized is returned when a bearer token, its signature,
	// or its claims fail verification. Like ErrAuthFailed it carries
	// no detail about which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal covers store failures that map to nothing above.
	ErrInternal = errors.New("internal error")
)
