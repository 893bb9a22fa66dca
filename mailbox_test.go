// Tideland Go Actor Model - Unit Tests
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package actormodel_test

//--------------------
// IMPORTS
//--------------------

import (
	"context"
	"testing"
	"time"

	"tideland.dev/go/asserts/verify"

	"tideland.dev/go/actormodel"
)

//--------------------
// TESTS
//--------------------

// TestMailboxInvalidCapacity verifies that a mailbox needs a
// positive capacity.
func TestMailboxInvalidCapacity(t *testing.T) {
	_, _, err := actormodel.NewMailbox[int](0)
	verify.ErrorMatch(t, err, ".*capacity must be positive.*")
	verify.True(t, actormodel.HasCode(err, actormodel.ErrInvalid))
}

// TestMailboxFIFO verifies the delivery order and the end of the
// messages after closing the producers.
func TestMailboxFIFO(t *testing.T) {
	ctx := context.Background()
	p, c, err := actormodel.NewMailbox[int](5)
	verify.NoError(t, err)
	verify.Equal(t, c.Cap(), 5)

	for i := range 5 {
		verify.NoError(t, p.Enqueue(ctx, i))
	}
	verify.Equal(t, c.Len(), 5)
	p.Close()

	for i := range 5 {
		msg, ok := c.Next()
		verify.True(t, ok)
		verify.Equal(t, msg, i)
	}
	_, ok := c.Next()
	verify.True(t, !ok, "no more messages after last producer closed")
}

// TestMailboxClones verifies that the mailbox stays open until the
// last clone of a producer is closed.
func TestMailboxClones(t *testing.T) {
	ctx := context.Background()
	p, c, err := actormodel.NewMailbox[string](3)
	verify.NoError(t, err)
	clone, err := p.Clone()
	verify.NoError(t, err)

	verify.NoError(t, p.Enqueue(ctx, "a"))
	p.Close()
	p.Close()

	err = p.Enqueue(ctx, "x")
	verify.True(t, actormodel.HasCode(err, actormodel.ErrClosed))
	_, err = p.Clone()
	verify.True(t, actormodel.HasCode(err, actormodel.ErrClosed))

	verify.NoError(t, clone.Enqueue(ctx, "b"))
	clone.Close()

	msg, ok := c.Next()
	verify.True(t, ok)
	verify.Equal(t, msg, "a")
	msg, ok = c.Next()
	verify.True(t, ok)
	verify.Equal(t, msg, "b")
	_, ok = c.Next()
	verify.True(t, !ok)
}

// TestMailboxBackpressure verifies that Enqueue suspends on a full
// mailbox until the consumer takes a message.
func TestMailboxBackpressure(t *testing.T) {
	ctx := context.Background()
	p, c, err := actormodel.NewMailbox[int](1)
	verify.NoError(t, err)
	defer p.Close()

	verify.NoError(t, p.Enqueue(ctx, 1))
	err = p.TryEnqueue(2)
	verify.True(t, actormodel.HasCode(err, actormodel.ErrMailboxFull))

	enqueued := make(chan error, 1)
	go func() {
		enqueued <- p.Enqueue(ctx, 2)
	}()

	select {
	case <-enqueued:
		t.Fatalf("enqueue did not suspend on full mailbox")
	case <-time.After(50 * time.Millisecond):
	}

	msg, ok := c.Next()
	verify.True(t, ok)
	verify.Equal(t, msg, 1)
	verify.NoError(t, <-enqueued)
	msg, ok = c.Next()
	verify.True(t, ok)
	verify.Equal(t, msg, 2)
}

// TestMailboxCanceledEnqueue verifies that a suspended Enqueue ends
// with the context.
func TestMailboxCanceledEnqueue(t *testing.T) {
	p, _, err := actormodel.NewMailbox[int](1)
	verify.NoError(t, err)
	defer p.Close()

	verify.NoError(t, p.Enqueue(context.Background(), 1))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = p.Enqueue(ctx, 2)
	verify.True(t, actormodel.HasCode(err, actormodel.ErrCanceled))
	verify.ErrorMatch(t, err, ".*context deadline exceeded.*")
}

// TestMailboxConsumerGone verifies that closing the consumer wakes
// suspended producers and discards buffered messages.
func TestMailboxConsumerGone(t *testing.T) {
	ctx := context.Background()
	p, c, err := actormodel.NewMailbox[int](2)
	verify.NoError(t, err)
	defer p.Close()

	verify.NoError(t, p.Enqueue(ctx, 1))
	verify.NoError(t, p.Enqueue(ctx, 2))

	enqueued := make(chan error, 1)
	go func() {
		enqueued <- p.Enqueue(ctx, 3)
	}()
	time.Sleep(20 * time.Millisecond)

	discarded := []int{}
	c.Close(func(msg int) {
		discarded = append(discarded, msg)
	})

	// The woken producer either is rejected or slipped into the
	// space freed by discarding, it never stays suspended.
	err = <-enqueued
	verify.True(t, err == nil || actormodel.HasCode(err, actormodel.ErrClosed))
	verify.True(t, len(discarded) >= 2)
	verify.Equal(t, discarded[0], 1)
	verify.Equal(t, discarded[1], 2)

	err = p.TryEnqueue(4)
	verify.True(t, actormodel.HasCode(err, actormodel.ErrClosed))
	verify.ErrorMatch(t, err, ".*consumer is gone.*")
}

// TestMailboxCloseWhileSuspended verifies that closing producers never
// waits for suspended producers and that the last Close wakes them.
func TestMailboxCloseWhileSuspended(t *testing.T) {
	ctx := context.Background()
	p, c, err := actormodel.NewMailbox[int](1)
	verify.NoError(t, err)
	clone, err := p.Clone()
	verify.NoError(t, err)

	verify.NoError(t, p.Enqueue(ctx, 1))
	enqueued := make(chan error, 1)
	go func() {
		enqueued <- p.Enqueue(ctx, 2)
	}()
	time.Sleep(20 * time.Millisecond)

	closedClone := make(chan struct{})
	go func() {
		clone.Close()
		close(closedClone)
	}()
	select {
	case <-closedClone:
	case <-time.After(50 * time.Millisecond):
		t.Fatalf("closing a clone waits for a suspended producer")
	}

	// Closing the last producer ends the suspended one, the mailbox
	// is still full.
	p.Close()
	err = <-enqueued
	verify.True(t, actormodel.HasCode(err, actormodel.ErrClosed))

	msg, ok := c.Next()
	verify.True(t, ok)
	verify.Equal(t, msg, 1)
	_, ok = c.Next()
	verify.True(t, !ok)
}

// EOF
