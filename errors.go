// go-colord - read and manipulate ICC colour profiles
// Copyright (C) 2026  Richard Hughes <richard@hughsie.com>
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with this library; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301 USA

package icc

import "fmt"

// ErrorKind classifies the errors the icc package can return. Kinds are a
// closed set; callers should switch on Kind rather than compare messages.
type ErrorKind int

const (
	// ErrUnknown is never returned; it is the zero value of ErrorKind.
	ErrUnknown ErrorKind = iota
	ErrFailedToOpen
	ErrFailedToParse
	ErrInvalidLocale
	ErrNoData
	ErrFailedToSave
	ErrFailedToCreate
	ErrInvalidColorspace
	ErrCorruptionDetected
	ErrInternal
	ErrFailedToSetupTransform
	ErrUserAbort
)

func (k ErrorKind) String() string {
	switch k {
	case ErrFailedToOpen:
		return "failed-to-open"
	case ErrFailedToParse:
		return "failed-to-parse"
	case ErrInvalidLocale:
		return "invalid-locale"
	case ErrNoData:
		return "no-data"
	case ErrFailedToSave:
		return "failed-to-save"
	case ErrFailedToCreate:
		return "failed-to-create"
	case ErrInvalidColorspace:
		return "invalid-colorspace"
	case ErrCorruptionDetected:
		return "corruption-detected"
	case ErrInternal:
		return "internal"
	case ErrFailedToSetupTransform:
		return "failed-to-setup-transform"
	case ErrUserAbort:
		return "user-abort"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the icc package. It carries a Kind so
// callers can use [errors.As] and inspect Kind instead of parsing messages.
type Error struct {
	Kind ErrorKind
	Msg  string
	// Wrapped is the underlying error, if any, that caused this one.
	Wrapped error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "icc: " + e.Kind.String()
	}
	return fmt.Sprintf("icc: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether err is an *Error with the same Kind, so that
// errors.Is(err, icc.ErrKind(icc.ErrNoData)) works.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Msg == "" && other.Wrapped == nil && other.Kind == e.Kind
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind ErrorKind, msg string, wrapped error) *Error {
	return &Error{Kind: kind, Msg: msg, Wrapped: wrapped}
}

// ErrKind returns a sentinel *Error for the given kind, for use with
// errors.Is: `errors.Is(err, icc.ErrKind(icc.ErrNoData))`.
func ErrKind(kind ErrorKind) error {
	return &Error{Kind: kind}
}
