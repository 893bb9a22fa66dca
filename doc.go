// Tideland Go Actor Model
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package actormodel provides a small typed actor runtime built on channels. An actor is a
value owning mutable state. It is only reached through messages, which a single pump
goroutine applies one after another in the order the mailbox accepted them. No locks
around the state are needed, because nothing but the pump ever touches it.

The parts are

  - the Mailbox, a bounded FIFO queue with many producers and one consumer,
  - the Actor, any value with a Handle(msg M) method for its own message type M,
  - the pump, started by Spawn, owning the actor and the consuming end,
  - the Handle, a cloneable front-end holding one producing end,
  - the reply channel, a single-use channel correlating a request with its answer.

# Messages

Each actor declares its own closed set of messages. A sealed interface with an
unexported marker method works well, Handle switches over all variants:

	type counterMsg interface{ counterMsg() }

	type increment struct{}

	type nextUID struct {
		replyTo actormodel.ReplyTo[uint64]
	}

	func (increment) counterMsg() {}
	func (nextUID) counterMsg()   {}

	type counter struct {
		value uint64
	}

	func (c *counter) Handle(msg counterMsg) {
		switch m := msg.(type) {
		case increment:
			c.value++
		case nextUID:
			c.value++
			m.replyTo.Send(c.value)
		}
	}

# Sending and Requesting

Spawn starts the actor and returns its first Handle. Send enqueues a message and suspends
while the mailbox is full. Request builds a message around a fresh reply channel and waits
for the answer:

	h, err := actormodel.Spawn[counterMsg](&counter{}, actormodel.NewConfig().SetName("uids"))
	if err != nil {
		return err
	}
	defer h.Close()

	uid, err := actormodel.Request(ctx, h, func(r actormodel.ReplyTo[uint64]) counterMsg {
		return nextUID{replyTo: r}
	})

RequestAsync returns an Awaiter instead, so that a number of requests can be queued
before waiting for the first answer.

# Lifecycle

Clone returns a further Handle for the same actor, e.g. for another goroutine. Each handle
is closed on its own. Closing the last one lets the pump handle the remaining messages
and stop, Done and Wait signal the end. There is no other way to stop an actor.

# Errors

All errors are of type *ActorError, HasCode tests for the ErrorCode:

  - ErrClosed: the actor is gone or the handle is closed, don't retry.
  - ErrMailboxFull: only returned by TrySend, Send suspends instead.
  - ErrNoReply: the request was dropped or the handler did not answer
    before returning.
  - ErrCanceled: the caller's context ended first.
  - ErrHandlerFault: Handle panicked. Only this actor stops, the fault is
    logged, counted, and returned by Err and Wait. Pending requests
    get ErrNoReply.

A reply sent to a caller that stopped waiting is no error, the value is silently dropped.
*/

package actormodel
