package reconcile

import (
	"errors"
	"fmt"

	"garment-stock/core/validator"
)

// ValidationError rejects a request before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError is returned when a request targets a key with no stored record.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return "item not found in inventory"
}

// InsufficientQuantityError is returned when a removal exceeds the on-hand quantity.
type InsufficientQuantityError struct {
	Key       string
	Available int
	Requested int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("insufficient quantity: available %d, requested %d", e.Available, e.Requested)
}

// StoreError wraps a failed persistence call. The operation was aborted.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsInsufficient reports whether err is an *InsufficientQuantityError.
func IsInsufficient(err error) bool {
	var target *InsufficientQuantityError
	return errors.As(err, &target)
}

// IsStore reports whether err is a *StoreError.
func IsStore(err error) bool {
	var target *StoreError
	return errors.As(err, &target)
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// validationFrom converts the first failed rule into a ValidationError.
func validationFrom(errs []*validator.ErrorResponse) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	reason := first.Tag
	switch first.Tag {
	case "required":
		reason = "is required"
	case "garment_type":
		reason = "unknown garment type"
	case "garment_size":
		reason = "size is not offered for this type"
	case "gt":
		reason = "must be greater than " + first.Value
	}
	return &ValidationError{Field: first.FailedField, Reason: reason}
}
