// Tideland Go Actor Model
//
// Copyright (C) 2019-2025 Frank Mueller / Tideland / Oldenburg / Germany
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package actormodel // import "tideland.dev/go/actormodel"

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//--------------------
// ACTOR
//--------------------

// Actor is implemented by the state owned by an actor. Handle is
// called for each message in the order they have been accepted by
// the mailbox, never concurrently. It has to cover all messages of M.
type Actor[M any] interface {
	Handle(msg M)
}

// HandlerFunc allows to use a function as Actor. The state is
// whatever the function closes over.
type HandlerFunc[M any] func(msg M)

// Handle implements Actor.
func (f HandlerFunc[M]) Handle(msg M) {
	f(msg)
}

//--------------------
// SPAWN
//--------------------

// Spawn starts a pump goroutine owning the actor and returns the
// first Handle for it. A nil config means the default configuration.
// The actor runs until all handles are closed and the mailbox is
// drained, or until its handler panics.
func Spawn[M any](act Actor[M], cfg *Config) (*Handle[M], error) {
	if act == nil {
		return nil, NewError("Spawn", fmt.Errorf("actor cannot be nil"), ErrInvalid)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	producer, consumer, err := NewMailbox[envelope[M]](cfg.MailboxCapacity())
	if err != nil {
		return nil, err
	}
	life := &lifecycle{
		id:   uuid.New(),
		name: cfg.Name(),
		done: make(chan struct{}),
	}
	m, err := newMetrics(cfg.MeterProvider(), cfg.Name(), consumer.Len)
	if err != nil {
		return nil, NewError("Spawn", err, ErrInvalid)
	}
	p := &pump[M]{
		actor:     act,
		consumer:  consumer,
		life:      life,
		logger:    cfg.Logger().With(zap.String("actor", life.name), zap.Stringer("id", life.id)),
		metrics:   m,
		finalizer: cfg.Finalizer(),
	}
	started := make(chan struct{})
	go p.run(started)
	<-started
	return &Handle[M]{
		producer: producer,
		life:     life,
	}, nil
}

// EOF
