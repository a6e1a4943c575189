package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing caller input. It is never
// retried and always maps to a client error at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ProductNotFoundError is raised while resolving order items against the
// product catalog. It carries the offending product id so callers can name it.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

func ProductNotFound(productID string) error {
	return &ProductNotFoundError{ProductID: productID}
}

// InvalidElementError wraps a write the underlying store rejected.
type InvalidElementError struct {
	Message string
	Err     error
}

func (e *InvalidElementError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InvalidElementError) Unwrap() error { return e.Err }

func InvalidElement(message string, err error) error {
	return &InvalidElementError{Message: message, Err: err}
}

// StorageError wraps an unexpected storage failure such as lost connectivity.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

func Storage(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}

// IsNotFound reports whether err is a missing-entity error of any flavor.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	var pnf *ProductNotFoundError
	return errors.As(err, &nf) || errors.As(err, &pnf)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
