package core

import (
	"fmt"

	"github.com/inovacc/cvehunt/internal/auth"
)

// ErrNoToken is returned by token sources when no token could be obtained
var ErrNoToken = auth.ErrNoToken

// OperationError wraps an I/O failure that aborted an operation
type OperationError struct {
	Action Action
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Action, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
