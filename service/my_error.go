package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an unexpected internal error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a record (user, product, order) is absent.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a provided parameter or body does not match what is declared.
	ErrBadParameter = "bad_parameter"
	// ErrEntityConflict means that a record with the same key already exists.
	ErrEntityConflict = "entity_conflict"
	// ErrFieldMismatch means that delete credentials do not match the stored record.
	ErrFieldMismatch = "field_mismatch"
	// ErrServiceUnavailable means that a logical service has no registered backend address.
	ErrServiceUnavailable = "service_unavailable"
	// ErrGatewayFailure means that the outbound leg of a proxied call failed at the transport level.
	ErrGatewayFailure = "gateway_failure"
	// ErrQuantityExceeded means that an order asked for more than the product's current stock.
	ErrQuantityExceeded = "quantity_exceeded"
)

// MyError represents an error within the context of the fleet services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrBadParameter, message, inner)
}

func NewEntityConflictError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrEntityConflict, message, inner)
}

func NewFieldMismatchError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrFieldMismatch, message, inner)
}

func NewServiceUnavailableError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrServiceUnavailable, message, inner)
}

func NewGatewayFailureError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrGatewayFailure, message, inner)
}

func NewQuantityExceededError(message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(ErrQuantityExceeded, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a fleet error, or nil if it is not a fleet error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	if myerror := ToMyError(err); myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	if myerror := ToMyError(err); myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsEntityConflictError(err error) bool {
	return IsMyError(err, ErrEntityConflict)
}

func IsFieldMismatchError(err error) bool {
	return IsMyError(err, ErrFieldMismatch)
}

func IsQuantityExceededError(err error) bool {
	return IsMyError(err, ErrQuantityExceeded)
}
