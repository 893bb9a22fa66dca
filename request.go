// Tideland Go Actor Model - Request
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
)

//--------------------
// REQUEST
//--------------------

// Request sends the message built around a fresh reply channel and
// waits for the answer. If the handler returns without sending a
// reply, or the actor stops before, the error has the code ErrNoReply.
// A deadline is set via the context.
func Request[M, T any](ctx context.Context, h *Handle[M], build func(ReplyTo[T]) M) (T, error) {
	reply, err := sendRequest(ctx, h, build)
	if err != nil {
		var zero T
		return zero, err
	}
	return reply.Await(ctx)
}

// RequestAsync sends the message built around a fresh reply channel
// and returns as soon as it is queued. The returned Awaiter waits for
// the answer. An enqueue error is returned by the Awaiter too.
func RequestAsync[M, T any](ctx context.Context, h *Handle[M], build func(ReplyTo[T]) M) Awaiter[T] {
	reply, err := sendRequest(ctx, h, build)
	if err != nil {
		var zero T
		failed := NewResult(zero, err)
		return func(context.Context) Result[T] {
			return failed
		}
	}
	return func(ctx context.Context) Result[T] {
		value, err := reply.Await(ctx)
		return NewResult(value, err)
	}
}

// sendRequest enqueues the request message. The reply is abandoned
// by the pump if the handler does not answer, and resolved by the
// end of the actor if the message never reaches the handler.
func sendRequest[M, T any](ctx context.Context, h *Handle[M], build func(ReplyTo[T]) M) (*Reply[T], error) {
	replyTo, reply := NewReply[T]()
	reply.bind(h.Done())
	env := envelope[M]{
		msg:    build(replyTo),
		settle: replyTo.Abandon,
	}
	if err := h.enqueue(ctx, env); err != nil {
		return nil, err
	}
	return reply, nil
}

// EOF
