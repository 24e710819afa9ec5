package domain

import "fmt"

// FetchErrorKind is a high-level classification of download failures.
type FetchErrorKind string

const (
	FetchErrorUnknown FetchErrorKind = "unknown"
	FetchErrorTimeout FetchErrorKind = "timeout"
	FetchErrorDNS     FetchErrorKind = "dns"
	FetchErrorConn    FetchErrorKind = "connection"
	FetchErrorHTTP    FetchErrorKind = "http"
)

// FetchError represents a structured error produced by an image fetcher.
type FetchError struct {
	Kind   FetchErrorKind
	Status int // set for FetchErrorHTTP
	Err    error
}

func (e *FetchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == FetchErrorHTTP {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
