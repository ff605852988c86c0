package api

import "errors"

var (
	// ErrUnavailable covers transport failures: the request could not be
	// sent or completed.
	ErrUnavailable = errors.New("portal unavailable")

	// ErrUnauthorized covers 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRequestFailed covers success=false envelopes and unexpected
	// statuses.
	ErrRequestFailed = errors.New("request failed")
)
