// Tideland Go Actor Model - Mailbox
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
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

//--------------------
// ERRORS
//--------------------

var (
	errConsumerGone   = errors.New("mailbox consumer is gone")
	errProducerClosed = errors.New("producer is closed")
	errProducersGone  = errors.New("all producers are closed")
)

//--------------------
// MAILBOX
//--------------------

// mailbox is the bounded queue shared by all producers and the
// one consumer. No lock is held while waiting on the queue, the
// queue itself is never closed.
type mailbox[M any] struct {
	queue         chan M
	producers     atomic.Int64
	producersGone chan struct{}
	gone          chan struct{}
	goneOnce      sync.Once
}

// NewMailbox creates a bounded FIFO mailbox with the given capacity
// and returns its producing and consuming ends.
func NewMailbox[M any](capacity int) (*Producer[M], *Consumer[M], error) {
	if capacity < 1 {
		return nil, nil, NewError("NewMailbox", fmt.Errorf("capacity must be positive: %d", capacity), ErrInvalid)
	}
	mb := &mailbox[M]{
		queue:         make(chan M, capacity),
		producersGone: make(chan struct{}),
		gone:          make(chan struct{}),
	}
	mb.producers.Store(1)
	return &Producer[M]{mb: mb}, &Consumer[M]{mb: mb}, nil
}

// closed returns true if the channel is closed.
func closed(c <-chan struct{}) bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}

//--------------------
// PRODUCER
//--------------------

// Producer is one producing end of a mailbox. Each clone has to
// be closed on its own, the mailbox ends with the last one.
type Producer[M any] struct {
	mb       *mailbox[M]
	released atomic.Bool
}

// Enqueue appends the message to the mailbox. It suspends while the
// mailbox is full and fails if the consumer is gone, the producer
// is closed, or the context ends first.
func (p *Producer[M]) Enqueue(ctx context.Context, msg M) error {
	if err := p.check("Enqueue"); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return NewError("Enqueue", err, ErrCanceled)
	}
	select {
	case p.mb.queue <- msg:
		return nil
	case <-p.mb.gone:
		return NewError("Enqueue", errConsumerGone, ErrClosed)
	case <-p.mb.producersGone:
		return NewError("Enqueue", errProducersGone, ErrClosed)
	case <-ctx.Done():
		return NewError("Enqueue", ctx.Err(), ErrCanceled)
	}
}

// TryEnqueue appends the message without suspending. A full mailbox
// is reported with ErrMailboxFull.
func (p *Producer[M]) TryEnqueue(msg M) error {
	if err := p.check("TryEnqueue"); err != nil {
		return err
	}
	select {
	case p.mb.queue <- msg:
		return nil
	default:
		return NewError("TryEnqueue", fmt.Errorf("capacity %d reached", cap(p.mb.queue)), ErrMailboxFull)
	}
}

// Clone returns a further producer for the same mailbox.
func (p *Producer[M]) Clone() (*Producer[M], error) {
	if err := p.check("Clone"); err != nil {
		return nil, err
	}
	for {
		n := p.mb.producers.Load()
		if n == 0 {
			return nil, NewError("Clone", errProducersGone, ErrClosed)
		}
		if p.mb.producers.CompareAndSwap(n, n+1) {
			return &Producer[M]{mb: p.mb}, nil
		}
	}
}

// Close releases the producer without waiting. Closing the last
// producer lets the consumer drain the mailbox and stop. Calling
// Close more than once is fine.
func (p *Producer[M]) Close() {
	if !p.released.CompareAndSwap(false, true) {
		return
	}
	if p.mb.producers.Dec() == 0 {
		close(p.mb.producersGone)
	}
}

// check tests if the producer still may use the mailbox.
func (p *Producer[M]) check(op string) error {
	if p.released.Load() {
		return NewError(op, errProducerClosed, ErrClosed)
	}
	if closed(p.mb.gone) {
		return NewError(op, errConsumerGone, ErrClosed)
	}
	return nil
}

//--------------------
// CONSUMER
//--------------------

// Consumer is the single consuming end of a mailbox.
type Consumer[M any] struct {
	mb *mailbox[M]
}

// Next returns the next message in FIFO order. It suspends while the
// mailbox is empty and returns false once all producers are closed
// and the mailbox is drained.
func (c *Consumer[M]) Next() (M, bool) {
	select {
	case msg := <-c.mb.queue:
		return msg, true
	case <-c.mb.producersGone:
		select {
		case msg := <-c.mb.queue:
			return msg, true
		default:
			var zero M
			return zero, false
		}
	}
}

// Close marks the consumer as gone. Suspended and later producers
// fail with ErrClosed, messages still buffered are passed to discard.
func (c *Consumer[M]) Close(discard func(M)) {
	c.mb.goneOnce.Do(func() {
		close(c.mb.gone)
	})
	for {
		select {
		case msg := <-c.mb.queue:
			if discard != nil {
				discard(msg)
			}
		default:
			return
		}
	}
}

// Len returns the number of buffered messages.
func (c *Consumer[M]) Len() int {
	return len(c.mb.queue)
}

// Cap returns the capacity of the mailbox.
func (c *Consumer[M]) Cap() int {
	return cap(c.mb.queue)
}

// EOF
