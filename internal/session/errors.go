// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
)

// ErrConcurrentOperation is matched by every ConcurrentOperationError.
var ErrConcurrentOperation = errors.New("operation already in progress")

// ConcurrentOperationError is returned when an operation of the same kind
// is still running on the session. Nothing is queued.
type ConcurrentOperationError struct {
	Op string
}

func (e *ConcurrentOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrConcurrentOperation)
}

func (e *ConcurrentOperationError) Unwrap() error {
	return ErrConcurrentOperation
}
