// Tideland Go Actor Model - Handle
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

	"github.com/google/uuid"
)

//--------------------
// LIFECYCLE
//--------------------

// lifecycle is shared by all handles of one actor. err is written
// once before done is closed.
type lifecycle struct {
	id   uuid.UUID
	name string
	done chan struct{}
	err  error
}

// finish stores the terminal error and signals the end.
func (l *lifecycle) finish(err error) {
	l.err = err
	close(l.done)
}

//--------------------
// HANDLE
//--------------------

// Handle is the only way to reach an actor. It wraps one producing
// end of the actor's mailbox. Clones feed the same mailbox, each one
// has to be closed when not needed anymore.
type Handle[M any] struct {
	producer *Producer[envelope[M]]
	life     *lifecycle
}

// ID returns the unique identifier of the actor.
func (h *Handle[M]) ID() uuid.UUID {
	return h.life.id
}

// Name returns the configured name of the actor.
func (h *Handle[M]) Name() string {
	return h.life.name
}

// Send enqueues the message. It suspends while the mailbox is full
// and fails with ErrClosed if the actor is gone or the handle is
// closed, and with ErrCanceled if the context ends first.
func (h *Handle[M]) Send(ctx context.Context, msg M) error {
	return h.producer.Enqueue(ctx, envelope[M]{msg: msg})
}

// TrySend enqueues the message without suspending. A full mailbox is
// reported with ErrMailboxFull.
func (h *Handle[M]) TrySend(msg M) error {
	return h.producer.TryEnqueue(envelope[M]{msg: msg})
}

// Clone returns a further handle to the same actor.
func (h *Handle[M]) Clone() (*Handle[M], error) {
	producer, err := h.producer.Clone()
	if err != nil {
		return nil, err
	}
	return &Handle[M]{
		producer: producer,
		life:     h.life,
	}, nil
}

// Close releases the handle. When the last handle of an actor is
// closed the actor handles the remaining messages and stops.
func (h *Handle[M]) Close() {
	h.producer.Close()
}

// Done returns a channel which is closed when the actor stopped.
func (h *Handle[M]) Done() <-chan struct{} {
	return h.life.done
}

// Err returns the terminal error of a stopped actor. It is nil
// while the actor is running.
func (h *Handle[M]) Err() error {
	select {
	case <-h.life.done:
		return h.life.err
	default:
		return nil
	}
}

// Wait blocks until the actor stopped and returns its terminal error.
// It does not stop the actor by itself.
func (h *Handle[M]) Wait(ctx context.Context) error {
	select {
	case <-h.life.done:
		return h.life.err
	case <-ctx.Done():
		return NewError("Wait", ctx.Err(), ErrCanceled)
	}
}

// enqueue passes a prepared envelope to the mailbox.
func (h *Handle[M]) enqueue(ctx context.Context, env envelope[M]) error {
	return h.producer.Enqueue(ctx, env)
}

// EOF
