package upstream

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a well-formed upstream answer that carries no usable record.
var ErrNotFound error = errors.New("not found")

// ErrUnexpectedStatus is wrapped when an upstream answers with a non-2xx status.
var ErrUnexpectedStatus error = errors.New("unexpected status code")

// Error describes a failed call to an external service.
type Error struct {
	Service    string
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Service, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Service, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as an upstream failure of service/op.
func NewError(service, op string, err error) *Error {
	return &Error{Service: service, Op: op, Err: err}
}

// IsNotFound reports whether err is an upstream "no record" answer.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
