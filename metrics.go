// Tideland Go Actor Model - Metrics
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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

//--------------------
// CONSTANTS
//--------------------

const (
	instrumentationName = "tideland.dev/go/actormodel"

	handledCounterName    = "actormodel.messages.handled"
	faultCounterName      = "actormodel.handler.faults"
	durationHistogramName = "actormodel.handle.duration"
	mailboxGaugeName      = "actormodel.mailbox.size"
)

//--------------------
// METRICS
//--------------------

// metrics contains the instruments of one actor.
type metrics struct {
	attrs        metric.MeasurementOption
	handled      metric.Int64Counter
	faults       metric.Int64Counter
	duration     metric.Float64Histogram
	registration metric.Registration
}

// newMetrics creates the instruments for the named actor. The mailbox
// size is observed through the given length function.
func newMetrics(provider metric.MeterProvider, name string, length func() int) (*metrics, error) {
	meter := provider.Meter(instrumentationName)
	m := &metrics{
		attrs: metric.WithAttributeSet(attribute.NewSet(attribute.String("actor.name", name))),
	}
	var err error
	if m.handled, err = meter.Int64Counter(
		handledCounterName,
		metric.WithDescription("The total number of messages handled by the actor"),
	); err != nil {
		return nil, fmt.Errorf("failed to create handled count instrument: %w", err)
	}
	if m.faults, err = meter.Int64Counter(
		faultCounterName,
		metric.WithDescription("The total number of handler faults of the actor"),
	); err != nil {
		return nil, fmt.Errorf("failed to create fault count instrument: %w", err)
	}
	if m.duration, err = meter.Float64Histogram(
		durationHistogramName,
		metric.WithDescription("The latency of handling one message in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create latency instrument: %w", err)
	}
	gauge, err := meter.Int64ObservableGauge(
		mailboxGaugeName,
		metric.WithDescription("The number of messages waiting in the mailbox"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailbox size instrument: %w", err)
	}
	observe := func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(gauge, int64(length()), m.attrs)
		return nil
	}
	if m.registration, err = meter.RegisterCallback(observe, gauge); err != nil {
		return nil, fmt.Errorf("failed to register mailbox size callback: %w", err)
	}
	return m, nil
}

// recordHandled counts one handled message and its duration.
func (m *metrics) recordHandled(ctx context.Context, start time.Time) {
	m.handled.Add(ctx, 1, m.attrs)
	m.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0, m.attrs)
}

// recordFault counts one handler fault.
func (m *metrics) recordFault(ctx context.Context) {
	m.faults.Add(ctx, 1, m.attrs)
}

// unregister stops observing the mailbox.
func (m *metrics) unregister() error {
	return m.registration.Unregister()
}

// EOF
