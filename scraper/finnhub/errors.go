package finnhub

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies why a quote request failed.
type ErrorKind string

const (
	KindTimeout    ErrorKind = "timeout"
	KindHTTPStatus ErrorKind = "http_status"
	KindTransport  ErrorKind = "transport"
	KindDecode     ErrorKind = "decode"
)

// FetchError is returned by Client.FetchQuote for every failure.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// KindOf returns the kind of err, or KindTransport if err is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindTransport
}

func transportError(err error) *FetchError {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &FetchError{Kind: KindTimeout, Message: "API request timed out.", Cause: err}
	}
	return &FetchError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("API request error occurred: %v", err),
		Cause:   err,
	}
}
