package service

import (
	"errors"
	"fmt"
)

// ErrNetwork is matched by every *NetworkError.
var ErrNetwork = errors.New("recipe service unavailable")

// Operations reported in NetworkError.Op.
const (
	OpFetchAll = "fetch recipes"
	OpCreate   = "create recipe"
)

// NetworkError is a failed call to the recipe service. StatusCode is zero when
// no response was received.
type NetworkError struct {
	Err        error
	Op         string
	StatusCode int
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + ErrNetwork.Error()
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNetwork) true for network errors.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError wraps err as a failure of op.
func NewNetworkError(op string, statusCode int, err error) error {
	return &NetworkError{Op: op, StatusCode: statusCode, Err: err}
}
