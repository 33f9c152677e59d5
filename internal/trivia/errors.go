package trivia

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the provider did not respond within the request window.
	ErrTimeout = errors.New("trivia: request timed out")

	// ErrNoResults indicates the provider has no questions for the
	// requested difficulty/category/amount combination.
	ErrNoResults = errors.New("trivia: no questions match the requested settings")

	// ErrInvalidParameter indicates the provider rejected a request parameter.
	ErrInvalidParameter = errors.New("trivia: invalid request parameter")

	// ErrRateLimited indicates the provider rejected the request for
	// exceeding its rate limit.
	ErrRateLimited = errors.New("trivia: rate limit exceeded")

	// ErrEmptyResults indicates a nominally successful response carried
	// zero questions.
	ErrEmptyResults = errors.New("trivia: provider returned no questions")
)

// RequestError wraps a transport-level failure: connection errors and
// non-2xx HTTP responses.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("trivia: request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ProviderError wraps a provider status code with no specific handling,
// including the two session-token codes this flow never triggers.
type ProviderError struct {
	Code int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("trivia: provider error (response_code=%d)", e.Code)
}

// IsConnectivity reports whether err is a timeout or transport failure,
// as opposed to a provider-level rejection.
func IsConnectivity(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
