// Package apperr carries the error kinds the HTTP layer maps to status codes.
// Services return these; anything else is treated as an internal storage error.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindExpired
	KindConflict
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error { return newf(KindValidation, format, args...) }
func NotFoundf(format string, args ...any) *Error   { return newf(KindNotFound, format, args...) }
func Unauthorized(msg string) *Error                { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error                   { return &Error{Kind: KindForbidden, Msg: msg} }
func Expired(msg string) *Error                     { return &Error{Kind: KindExpired, Msg: msg} }
func Conflict(msg string) *Error                    { return &Error{Kind: KindConflict, Msg: msg} }

// KindOf extracts the kind from an error chain; 0 means no apperr inside.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
