// Tideland Go Actor Model - Configuration
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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//--------------------
// CONSTANTS
//--------------------

const (
	// defaultName is used when no actor name is configured.
	defaultName = "actor"

	// defaultMailboxCap is the default capacity of the mailbox.
	defaultMailboxCap = 10
)

//--------------------
// CONFIG
//--------------------

// Finalizer is called with the terminal error of the pump when the
// actor stops. Its return value becomes the error of the actor.
type Finalizer func(err error) error

// Config configures an actor using fluent builder pattern.
// All fields are private and accessed via getters. Validation errors are
// accumulated and can be checked before spawning the actor.
type Config struct {
	name            string
	mailboxCapacity int
	logger          *zap.Logger
	meterProvider   metric.MeterProvider
	finalizer       Finalizer

	err error
}

// NewConfig creates a new configuration with sensible defaults.
func NewConfig() *Config {
	return &Config{
		name:            defaultName,
		mailboxCapacity: defaultMailboxCap,
		logger:          zap.NewNop(),
		meterProvider:   otel.GetMeterProvider(),
	}
}

// DefaultConfig creates a configuration with all default values.
func DefaultConfig() *Config {
	return NewConfig()
}

// SetName sets the name of the actor used in logs and metrics.
func (c *Config) SetName(name string) *Config {
	if name == "" {
		c.appendError(fmt.Errorf("name cannot be empty"))
		return c
	}
	c.name = name
	return c
}

// SetMailboxCapacity sets the maximum number of buffered messages.
// Must be positive.
func (c *Config) SetMailboxCapacity(capacity int) *Config {
	if capacity <= 0 {
		c.appendError(fmt.Errorf("mailbox capacity must be positive, got %d", capacity))
		return c
	}
	c.mailboxCapacity = capacity
	return c
}

// SetLogger sets the logger of the actor.
func (c *Config) SetLogger(logger *zap.Logger) *Config {
	if logger == nil {
		c.appendError(fmt.Errorf("logger cannot be nil"))
		return c
	}
	c.logger = logger
	return c
}

// SetMeterProvider sets the provider for the actor metrics.
func (c *Config) SetMeterProvider(provider metric.MeterProvider) *Config {
	if provider == nil {
		c.appendError(fmt.Errorf("meter provider cannot be nil"))
		return c
	}
	c.meterProvider = provider
	return c
}

// SetFinalizer sets a function to be called when the actor stops.
// The finalizer receives the error that caused the stop (if any).
func (c *Config) SetFinalizer(finalizer Finalizer) *Config {
	c.finalizer = finalizer
	return c
}

// Getters

// Name returns the configured actor name.
func (c *Config) Name() string {
	return c.name
}

// MailboxCapacity returns the configured mailbox capacity.
func (c *Config) MailboxCapacity() int {
	return c.mailboxCapacity
}

// Logger returns the configured logger.
func (c *Config) Logger() *zap.Logger {
	return c.logger
}

// MeterProvider returns the configured meter provider.
func (c *Config) MeterProvider() metric.MeterProvider {
	return c.meterProvider
}

// Finalizer returns the configured finalizer function.
func (c *Config) Finalizer() Finalizer {
	return c.finalizer
}

// Error accumulation

// appendError adds an error to the accumulated errors.
func (c *Config) appendError(err error) {
	c.err = multierr.Append(c.err, err)
}

// Validate returns any accumulated validation errors.
// This is called automatically by Spawn(), but can be called earlier to check.
func (c *Config) Validate() error {
	if c.err == nil {
		return nil
	}
	return NewError("Config", c.err, ErrInvalid)
}

// EOF
