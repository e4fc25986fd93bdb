package chatcompletion

import "errors"

var (
	// ErrRateLimited is returned for HTTP 429 answers.
	ErrRateLimited = errors.New("rate limited")
	// ErrTimeout is returned when the call hit its deadline or the client timeout.
	ErrTimeout = errors.New("request timed out")
)
