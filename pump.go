// Tideland Go Actor Model - Pump
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
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

//--------------------
// ENVELOPE
//--------------------

// envelope carries a message through the mailbox. Requests set settle
// to abandon their reply if the handler did not answer.
type envelope[M any] struct {
	msg    M
	settle func()
}

// done settles the envelope if needed.
func (env envelope[M]) done() {
	if env.settle != nil {
		env.settle()
	}
}

//--------------------
// PUMP
//--------------------

// pump exclusively owns the actor and the consuming end of its
// mailbox. Exactly one goroutine runs it.
type pump[M any] struct {
	actor     Actor[M]
	consumer  *Consumer[envelope[M]]
	life      *lifecycle
	logger    *zap.Logger
	metrics   *metrics
	finalizer Finalizer
}

// run is the goroutine of the pump.
func (p *pump[M]) run(started chan struct{}) {
	p.logger.Debug("actor started", zap.Int("mailbox-capacity", p.consumer.Cap()))
	close(started)
	p.finalize(p.loop())
}

// loop applies the messages one by one until the mailbox is closed
// and drained or a handler fault happens.
func (p *pump[M]) loop() error {
	for {
		env, ok := p.consumer.Next()
		if !ok {
			return nil
		}
		if err := p.handle(env); err != nil {
			return err
		}
	}
}

// handle passes one message to the actor. A panic is turned into
// an ErrHandlerFault which terminates the pump.
func (p *pump[M]) handle(env envelope[M]) (err error) {
	start := time.Now()
	defer func() {
		if reason := recover(); reason != nil {
			err = NewError("Handle", fmt.Errorf("panic: %v", reason), ErrHandlerFault)
			p.metrics.recordFault(context.Background())
			p.logger.Error("actor handler fault",
				zap.Any("reason", reason),
				zap.ByteString("stack", debug.Stack()))
		} else {
			p.metrics.recordHandled(context.Background(), start)
		}
		env.done()
	}()
	p.actor.Handle(env.msg)
	return nil
}

// finalize takes care for a clean pump finalization. Messages left
// in the mailbox are discarded, their requests get no reply.
func (p *pump[M]) finalize(err error) {
	discarded := 0
	p.consumer.Close(func(env envelope[M]) {
		discarded++
		env.done()
	})
	if uerr := p.metrics.unregister(); uerr != nil {
		p.logger.Warn("cannot unregister actor metrics", zap.Error(uerr))
	}
	if p.finalizer != nil {
		err = p.finalizer(err)
	}
	p.logger.Debug("actor stopped", zap.Int("discarded", discarded), zap.Error(err))
	p.life.finish(err)
}

// EOF
