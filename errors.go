// Tideland Go Actor Model
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package actormodel

//--------------------
// IMPORTS
//--------------------

import (
	"errors"
	"fmt"
)

//--------------------
// ERROR TYPES
//--------------------

// ErrorCode defines the type of error that occurred.
type ErrorCode int

const (
	// ErrNone signals no error.
	ErrNone ErrorCode = iota
	// ErrClosed signals that the mailbox is closed, the actor
	// no longer exists.
	ErrClosed
	// ErrMailboxFull signals a full mailbox on non-blocking sends.
	ErrMailboxFull
	// ErrNoReply signals that a request will never be answered.
	ErrNoReply
	// ErrHandlerFault signals a panic inside an actor handler.
	ErrHandlerFault
	// ErrCanceled signals that the caller's context ended first.
	ErrCanceled
	// ErrInvalid signals invalid parameters or state.
	ErrInvalid
)

// String implements the Stringer interface.
func (ec ErrorCode) String() string {
	switch ec {
	case ErrNone:
		return "no error"
	case ErrClosed:
		return "closed"
	case ErrMailboxFull:
		return "mailbox full"
	case ErrNoReply:
		return "no reply"
	case ErrHandlerFault:
		return "handler fault"
	case ErrCanceled:
		return "canceled"
	case ErrInvalid:
		return "invalid"
	default:
		return "unknown error"
	}
}

// ActorError contains detailed information about an actor error.
type ActorError struct {
	Op   string
	Err  error
	Code ErrorCode
}

// Error implements the error interface.
func (e *ActorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("actor %s: %v (%v)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("actor %s: %v", e.Op, e.Code)
}

// Unwrap implements error unwrapping.
func (e *ActorError) Unwrap() error {
	return e.Err
}

// NewError creates a new actor error.
func NewError(op string, err error, code ErrorCode) *ActorError {
	return &ActorError{
		Op:   op,
		Err:  err,
		Code: code,
	}
}

// HasCode returns true if err is or wraps an ActorError with
// the given code.
func HasCode(err error, code ErrorCode) bool {
	var ae *ActorError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Code == code
}

// EOF
