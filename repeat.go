// Tideland Go Actor Model - Repeat
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
	"time"
)

//--------------------
// REPEAT
//--------------------

// RepeatWithContext sends the message returned by msg to the actor in
// the given interval. It uses an own clone of the handle, so the actor
// keeps running as long as the repetition does. It ends when the
// context is canceled, the returned stopper function is called, or
// the actor stopped. The stopper waits until the clone is closed.
func RepeatWithContext[M any](
	ctx context.Context,
	h *Handle[M],
	interval time.Duration,
	msg func() M) (func(), error) {
	if interval <= 0 {
		return nil, NewError("Repeat", fmt.Errorf("interval must be positive: %v", interval), ErrInvalid)
	}
	clone, err := h.Clone()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	// Goroutine to run the interval.
	go func() {
		defer close(stopped)
		defer clone.Close()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-clone.Done():
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if clone.Send(ctx, msg()) != nil {
					return
				}
			}
		}
	}()
	return func() {
		cancel()
		<-stopped
	}, nil
}

// Repeat sends the message returned by msg to the actor in the given
// interval until the returned stopper function is called or the actor
// stopped.
func Repeat[M any](
	h *Handle[M],
	interval time.Duration,
	msg func() M) (func(), error) {
	return RepeatWithContext(context.Background(), h, interval, msg)
}

// EOF
