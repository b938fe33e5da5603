package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that a user or state entry is absent in storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a parameter is missing or violates the credential policy.
	ErrBadParameter = "bad_parameter"
	// ErrInvalidUserOrPassword means that the request carried no or wrong credentials.
	ErrInvalidUserOrPassword = "invalid_user_or_password"
	// ErrForbidden means that the caller is authenticated but its role may not run the operation.
	ErrForbidden = "forbidden"
	// ErrConflict means that a user with the same name already exists.
	ErrConflict = "conflict"
)

// MyError represents an error within the context of the persistence service.
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

// NewInternalServerError wraps inner as an internal error. When inner already is a
// *MyError it is returned unchanged so its classification survives.
func NewInternalServerError(message string, inner error) *MyError {
	return newOrKeep(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return newOrKeep(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return newOrKeep(ErrBadParameter, message, inner)
}

func NewInvalidUserOrPasswordError(message string, inner error) *MyError {
	return newOrKeep(ErrInvalidUserOrPassword, message, inner)
}

func NewForbiddenError(message string, inner error) *MyError {
	return newOrKeep(ErrForbidden, message, inner)
}

func NewConflictError(message string, inner error) *MyError {
	return newOrKeep(ErrConflict, message, inner)
}

func newOrKeep(code string, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
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

// ToMyError returns a pointer to a service error, or nil if it is not a service error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
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

func IsInvalidUserOrPasswordError(err error) bool {
	return IsMyError(err, ErrInvalidUserOrPassword)
}

func IsForbiddenError(err error) bool {
	return IsMyError(err, ErrForbidden)
}

func IsConflictError(err error) bool {
	return IsMyError(err, ErrConflict)
}
