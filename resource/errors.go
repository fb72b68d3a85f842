package resource

import "fmt"

// ErrLimitExceeded is returned when a single reservation can never fit in
// the configured limit.
type ErrLimitExceeded struct {
	Requested int64
	Limit     int64
}

func (e *ErrLimitExceeded) Error() string {
	return fmt.Sprintf("resource: request of %d bytes exceeds memory limit of %d bytes", e.Requested, e.Limit)
}
