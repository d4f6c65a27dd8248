package core

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a rename or delete targets a company or tax
// that does not exist.
var ErrNotFound = errors.New("record not found")

// BodyField is the field reported for a request body that does not decode.
const BodyField = "body"

// ValueFormatError reports a raw field value that could not be normalized.
type ValueFormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValueFormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// MissingFieldError reports a required key absent from a raw mapping.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// InvalidRangeError reports a history query whose start is after its end.
type InvalidRangeError struct {
	From  time.Time
	Until time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: %s is after %s",
		e.From.Format(time.DateOnly), e.Until.Format(time.DateOnly))
}

// ChangeConflictError reports an identifier that is both updated and removed
// by the same change set.
type ChangeConflictError struct {
	ID int64
}

func (e *ChangeConflictError) Error() string {
	return fmt.Sprintf("conflicting change: id %d is both updated and removed", e.ID)
}

// StoreError wraps a failure returned by the record store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// storeErr wraps err as a StoreError unless it already carries a domain error
// raised inside the unit of work.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
