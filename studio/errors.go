package studio

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned for calls made on, or outstanding when, the client is closed.
	ErrClosed = errors.New("studio client closed")
	// ErrUnlockRequired matches an RPCError the device raised because it is locked.
	ErrUnlockRequired = errors.New("device is locked; unlock it on the keyboard")
	// ErrNoResponse is returned when the device answers with meta.no_response.
	ErrNoResponse = errors.New("device sent no response")
	// ErrUnexpectedResponse is returned when the response does not answer the call that was made.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// RPCError is a meta.simple_error reported by the device.
type RPCError struct {
	RequestID uint32
	Condition ErrorCondition
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc request %d failed: %s", e.RequestID, e.Condition)
}

func (e *RPCError) Is(target error) bool {
	return target == ErrUnlockRequired && e.Condition == ErrorUnlockRequired
}
