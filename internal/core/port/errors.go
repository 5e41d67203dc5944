package port

import "errors"

var (
	// ErrRateLimitExceeded is returned when an anonymous caller has used up
	// the free tier.
	ErrRateLimitExceeded = errors.New("free tier limit exceeded")

	// ErrNotFound is returned when a requested record does not exist or is
	// not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest is returned when a request fails validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrGeneration wraps every failure of the generative backend.
	ErrGeneration = errors.New("generation failed")
)
