// Tideland Go Actor Model - Reply
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
	"context"
	"errors"
	"sync"
)

//--------------------
// ERRORS
//--------------------

var (
	errReplyAbandoned = errors.New("reply has been abandoned")
	errActorGone      = errors.New("actor terminated before replying")
)

//--------------------
// REPLY
//--------------------

// reply is the single-use, single-value channel shared by both
// halves. The once guards that either one value is delivered or
// the reply is abandoned, never both. value is written before
// delivered is closed.
type reply[T any] struct {
	once      sync.Once
	value     T
	delivered chan struct{}
	abandoned chan struct{}
}

// NewReply creates a reply channel. The ReplyTo half travels inside
// a message to the actor, the Reply half stays with the caller.
func NewReply[T any]() (ReplyTo[T], *Reply[T]) {
	r := &reply[T]{
		delivered: make(chan struct{}),
		abandoned: make(chan struct{}),
	}
	return ReplyTo[T]{r: r}, &Reply[T]{r: r}
}

//--------------------
// REPLY TO
//--------------------

// ReplyTo is the sending half of a reply channel. It is a small value
// and can be embedded in messages directly.
type ReplyTo[T any] struct {
	r *reply[T]
}

// Send delivers the value without blocking. Only the first Send or
// Abandon counts, later calls return false. A caller that stopped
// waiting does not make Send fail, the value just stays unobserved.
func (rt ReplyTo[T]) Send(value T) bool {
	if rt.r == nil {
		return false
	}
	sent := false
	rt.r.once.Do(func() {
		rt.r.value = value
		close(rt.r.delivered)
		sent = true
	})
	return sent
}

// Abandon tells the waiting caller that no reply will arrive. It is
// a no-op if a value has already been sent.
func (rt ReplyTo[T]) Abandon() {
	if rt.r == nil {
		return
	}
	rt.r.once.Do(func() {
		close(rt.r.abandoned)
	})
}

//--------------------
// REPLY
//--------------------

// Reply is the receiving half of a reply channel. It may be
// awaited by more than one goroutine.
type Reply[T any] struct {
	r    *reply[T]
	done <-chan struct{}
}

// bind lets the termination of an actor resolve the reply.
func (r *Reply[T]) bind(done <-chan struct{}) {
	r.done = done
}

// Await waits for the reply value. It returns an error with code
// ErrNoReply if the reply has been abandoned or the bound actor
// terminated without answering, and one with ErrCanceled if the
// context ends first. Once resolved, Await always returns the
// same outcome.
func (r *Reply[T]) Await(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-r.r.delivered:
		return r.r.value, nil
	case <-r.r.abandoned:
		return zero, NewError("Await", errReplyAbandoned, ErrNoReply)
	case <-r.done:
		// The actor may have answered right before terminating.
		if closed(r.r.delivered) {
			return r.r.value, nil
		}
		return zero, NewError("Await", errActorGone, ErrNoReply)
	case <-ctx.Done():
		return zero, NewError("Await", ctx.Err(), ErrCanceled)
	}
}

// EOF
