// Package osc implements the free-running oscillator that paces every
// tickable component at a configured frequency: self-paced ticks against
// the wall clock, with no catch-up batching if a pass runs long.
package osc

import (
	"fmt"
	"time"
)

// Tickable is anything the oscillator can advance by one step. cpu.CPU
// satisfies this through its Tick method.
type Tickable interface {
	Tick() error
}

// ChildTickError wraps a failure from a named tickable, attaching which
// child produced it.
type ChildTickError struct {
	Name  string
	Cause error
}

func (e *ChildTickError) Error() string {
	return fmt.Sprintf("osc: tick failed for %q: %v", e.Name, e.Cause)
}

func (e *ChildTickError) Unwrap() error { return e.Cause }

type child struct {
	name string
	dev  Tickable
}

// Oscillator holds a list of named tickables and a target inter-tick
// interval. It is not a precise scheduler: it self-paces against
// wall-clock time and never batches up dropped ticks.
type Oscillator struct {
	delta    time.Duration
	lastPass time.Time
	devices  []child
}

// FromHertz returns an Oscillator targeting hz ticks per second.
func FromHertz(hz float64) *Oscillator {
	return &Oscillator{delta: time.Duration(1e9 / hz)}
}

// FromMegahertz returns an Oscillator targeting mhz million ticks per
// second, the unit the CLI's --mhz flag uses.
func FromMegahertz(mhz float64) *Oscillator {
	return FromHertz(mhz * 1e6)
}

// Connect attaches a named tickable, advanced in registration order on
// every successful pass.
func (o *Oscillator) Connect(name string, dev Tickable) {
	o.devices = append(o.devices, child{name: name, dev: dev})
}

// Tick samples the monotonic clock; if at least delta has elapsed since
// the last successful pass, every attached tickable advances once, in
// registration order, and the pass timestamp updates. Otherwise Tick
// returns immediately having done no work. A child's error aborts the
// rest of the pass and is returned wrapped with the child's name; the
// pass timestamp is not updated on failure, so the next call retries the
// full pass right away.
func (o *Oscillator) Tick() error {
	now := time.Now()
	if now.Sub(o.lastPass) < o.delta {
		return nil
	}
	for _, c := range o.devices {
		if err := c.dev.Tick(); err != nil {
			return &ChildTickError{Name: c.name, Cause: err}
		}
	}
	o.lastPass = now
	return nil
}
