// Package apperrors defines the error taxonomy shared by every layer below the
// event router. Lower layers classify; only the router turns a classified error
// into a chat message.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how the conversation recovers from it.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPermission
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPermission:
		return "permission"
	case KindTransport:
		return "transport"
	default:
		return "unexpected"
	}
}

// Error is a classified application error. Code selects the localized user
// message; Message is for logs.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind and Code so sentinel values can be compared with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func newf(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

func Validation(code, format string, args ...any) *Error {
	return newf(KindValidation, code, format, args...)
}

func NotFound(code, format string, args ...any) *Error {
	return newf(KindNotFound, code, format, args...)
}

func Conflict(code, format string, args ...any) *Error {
	return newf(KindConflict, code, format, args...)
}

func Permission(code, format string, args ...any) *Error {
	return newf(KindPermission, code, format, args...)
}

// Transport wraps a message delivery failure.
func Transport(err error, format string, args ...any) *Error {
	e := newf(KindTransport, "transport_failed", format, args...)
	e.Err = err
	return e
}

// Wrap attaches a kind and code to an existing error.
func Wrap(err error, kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// CodeOf returns the code of the first classified error in err's chain, or "".
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Common codes.
var (
	ErrPermissionDenied = Permission("permission_denied", "admin role required")
	ErrEmptyCart        = Conflict("empty_cart", "cart is empty")
	ErrAlreadyPaid      = Conflict("already_paid", "order already paid")
	ErrIllegalStatus    = Conflict("illegal_transition", "illegal order status transition")
	ErrPromptPending    = Conflict("prompt_pending", "another form is in progress")
	ErrPromocodeExpired = Conflict("promocode_expired", "promocode expired")
	ErrNoPendingPrompt  = NotFound("no_pending_prompt", "no pending prompt")
)
