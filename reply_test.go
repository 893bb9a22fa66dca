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

// TestReplySendOnce verifies that only the first value is delivered.
func TestReplySendOnce(t *testing.T) {
	ctx := context.Background()
	replyTo, reply := actormodel.NewReply[string]()

	verify.True(t, replyTo.Send("first"))
	verify.True(t, !replyTo.Send("second"))
	replyTo.Abandon()

	value, err := reply.Await(ctx)
	verify.NoError(t, err)
	verify.Equal(t, value, "first")

	// Resolved replies keep their outcome.
	value, err = reply.Await(ctx)
	verify.NoError(t, err)
	verify.Equal(t, value, "first")
}

// TestReplyAbandon verifies the no reply outcome.
func TestReplyAbandon(t *testing.T) {
	replyTo, reply := actormodel.NewReply[int]()

	replyTo.Abandon()
	verify.True(t, !replyTo.Send(42))

	value, err := reply.Await(context.Background())
	verify.True(t, actormodel.HasCode(err, actormodel.ErrNoReply))
	verify.ErrorMatch(t, err, ".*abandoned.*")
	verify.Equal(t, value, 0)
}

// TestReplyAwaitCanceled verifies that the caller can give up and
// that the later sending still succeeds.
func TestReplyAwaitCanceled(t *testing.T) {
	replyTo, reply := actormodel.NewReply[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := reply.Await(ctx)
	verify.True(t, actormodel.HasCode(err, actormodel.ErrCanceled))

	verify.True(t, replyTo.Send(1), "sending to a caller who gave up is no failure")

	value, err := reply.Await(context.Background())
	verify.NoError(t, err)
	verify.Equal(t, value, 1)
}

// TestReplyConcurrentAwait verifies that each of several waiting
// callers honors its own context and all get the delivered value.
func TestReplyConcurrentAwait(t *testing.T) {
	replyTo, reply := actormodel.NewReply[int]()

	patient := make(chan int, 1)
	go func() {
		value, err := reply.Await(context.Background())
		verify.NoError(t, err)
		patient <- value
	}()
	time.Sleep(10 * time.Millisecond)

	// The impatient caller gives up while the patient one still waits.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := reply.Await(ctx)
	verify.True(t, actormodel.HasCode(err, actormodel.ErrCanceled))
	verify.True(t, time.Since(start) < time.Second, "await ignored its own deadline")

	verify.True(t, replyTo.Send(7))
	verify.Equal(t, <-patient, 7)

	value, err := reply.Await(context.Background())
	verify.NoError(t, err)
	verify.Equal(t, value, 7)
}

// TestReplyZeroValue verifies that an unused ReplyTo does nothing.
func TestReplyZeroValue(t *testing.T) {
	var replyTo actormodel.ReplyTo[int]

	verify.True(t, !replyTo.Send(1))
	replyTo.Abandon()
}

// EOF
