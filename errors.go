package dorkfactory

import "errors"

// Sentinel errors returned by the engine. All of them indicate bad caller
// input and are raised before any partial result is built, callers can match
// them with errors.Is.
var (
	// ErrInvalidTarget is returned when a target spec is empty or contains
	// disallowed characters after normalization.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrUnknownCategory is returned when a requested category id is not
	// registered in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownProfile is returned when a requested profile name is not
	// registered in the catalog.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrEmptyRequest is returned when the resolved target, category or
	// engine set is empty after defaults and overrides are applied.
	ErrEmptyRequest = errors.New("empty request")
)
