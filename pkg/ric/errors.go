package ric

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports a buffer that could not be copied into the
	// message tree or into a result record.
	ErrAllocation = errors.New("buffer allocation failed")
	// ErrProcedureMismatch reports a well formed PDU that is not the
	// message the caller asked for.
	ErrProcedureMismatch = errors.New("procedure mismatch")
	// ErrTooManyActions reports an action list above the configured bound.
	ErrTooManyActions = errors.New("too many actions")
	// ErrMissingIE reports a mandatory IE absent from a decoded message.
	ErrMissingIE = errors.New("mandatory IE missing")
)

// EncodeError is returned when the PER codec, or the range check that
// precedes it, rejects the assembled tree.
type EncodeError struct {
	Field string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s failed: %v", e.Field, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the PER codec cannot parse the input.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode E2AP-PDU failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
