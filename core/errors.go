package core

import (
	"errors"
	"fmt"
)

// Error codes of the line box engine
const (
	NOERROR   int = 0
	EMISSING  int = 122 // box, element or font does not exist
	EINVALID  int = 123 // malformed input: CSS, dimensions, commands
	EINTERNAL int = 125 // broken contract of line construction
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message. A nil err is replaced by the text of code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, fmt.Sprintf(format, v...)}
}

// Code returns the error code associated with an error, EINTERNAL for errors
// without a code and NOERROR for nil.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error, or the text
// of its error code. For nil it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// ErrorReport formats an error for interactive users, e.g.
//
//     invalid: not a dimension: "wide"
//
// Causes of wrapped errors are appended.
func ErrorReport(err error) string {
	if err == nil {
		return ""
	}
	e := AppError(nil)
	if !errors.As(err, &e) {
		return err.Error()
	}
	report := errorText(e.ErrorCode()) + ": " + e.UserMessage()
	if cause := errors.Unwrap(e); cause != nil && cause.Error() != errorText(e.ErrorCode()) {
		report += " (" + cause.Error() + ")"
	}
	return report
}

// ErrInvariant is the cause of every panic raised by Invariant.
var ErrInvariant = errors.New("invariant violated")

// Invariant checks a contract of line construction. If cond does not hold,
// Invariant panics with an EINTERNAL AppError wrapping ErrInvariant.
func Invariant(cond bool, format string, v ...interface{}) {
	if cond {
		return
	}
	panic(coreError{ErrInvariant, EINTERNAL, fmt.Sprintf(format, v...)})
}

// IsInvariantViolation checks if a recovered panic value has been produced by
// Invariant.
func IsInvariantViolation(r interface{}) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrInvariant)
}
