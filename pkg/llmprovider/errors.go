package llmprovider

import (
	"errors"
	"fmt"

	"smart-task-bot/pkg/chatcompletion"
)

var (
	// ErrAllProvidersFailed is returned when the whole chain failed.
	ErrAllProvidersFailed = errors.New("all providers failed")

	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest marks requests no provider can serve. They are not retried.
	ErrInvalidRequest = errors.New("invalid request")

	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError carries the failing provider's name.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify maps transport errors onto the provider-neutral sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, chatcompletion.ErrTimeout):
		return fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	case errors.Is(err, chatcompletion.ErrRateLimited):
		return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
	}
	return err
}
