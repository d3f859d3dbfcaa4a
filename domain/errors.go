package domain

import "errors"

var (
	// ErrInternalServerError is the only detail a client sees for configuration and upstream failures
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrENSNameNotFound is answered when the resolver has no address for a name
	ErrENSNameNotFound = errors.New("ENS name not found")
	// ErrMissingCredential will throw if a required api credential is not configured
	ErrMissingCredential = errors.New("api credential not configured")
)
