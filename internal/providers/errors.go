package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when no document provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a transport, HTTP status, or decoding failure for one upstream URL.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := "fetch failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: %s (status=%d)", e.URL, msg, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, msg)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// wrapFetchError guarantees err surfaces as a FetchError for url.
func wrapFetchError(url string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsFetchError(err); ok {
		return err
	}
	return &FetchError{URL: url, Err: err}
}
