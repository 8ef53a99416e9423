package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation        Code = "validation"
	CodeNotFound          Code = "not_found"
	CodeConflict          Code = "conflict"
	CodeEmptyPrerequisite Code = "empty_prerequisite"
	CodeCascadeBlocked    Code = "cascade_blocked"
	CodeCancelled         Code = "cancelled"
	CodeInternal          Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// Recoverable reports whether err is reported to the operator and the session
// continues. Internal errors terminate the session.
func Recoverable(err error) bool {
	code := GetCode(err)
	return code != "" && code != CodeInternal
}
