package model

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("entity conflict")
	// ErrUnavailable is returned when the backing store is unreachable.
	ErrUnavailable = errors.New("store unavailable")
	// ErrCanceled is returned when the operation is canceled by the caller.
	ErrCanceled = errors.New("operation canceled")
	// ErrInvalidArgument is returned when a required input fails validation
	// before any store access.
	ErrInvalidArgument = errors.New("invalid argument")
)

// WrapError normalizes store errors. Context cancellation and deadline
// errors become ErrCanceled; everything else passes through unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCanceled
	}
	return err
}
