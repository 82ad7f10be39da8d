package client

import (
	"errors"
	"fmt"
)

// TransportError indicates the remote endpoint was unreachable or
// answered with a non-2xx status. The submission may be retried by the
// user; the client never retries on its own.
type TransportError struct {
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("report request failed: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("report request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError indicates a 2xx response whose body could not
// be parsed or was missing the report field.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "malformed report response: " + e.Reason
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsMalformed reports whether err is a MalformedResponseError.
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
