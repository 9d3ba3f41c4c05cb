package cpu

import "fmt"

// BadOpCode reports that the opcode decode table has no entry for a byte
// fetched from the instruction stream.
type BadOpCode struct {
	Op byte
}

func (e *BadOpCode) Error() string {
	return fmt.Sprintf("cpu: bad opcode %#02x", e.Op)
}

// OutOfBounds reports a bus read or write to an address no connected
// device claims. It wraps the underlying bus error so callers can still
// errors.As down to the bus-level detail if they need it.
type OutOfBounds struct {
	Addr  uint16
	Cause error
}

func (e *OutOfBounds) Error() string {
	return fmt.Sprintf("cpu: out of bounds address %#04x", e.Addr)
}

func (e *OutOfBounds) Unwrap() error { return e.Cause }

// DecimalModeUnsupported reports an attempt to enable BCD arithmetic,
// either by executing SED or by restoring a status byte with D set.
type DecimalModeUnsupported struct{}

func (e *DecimalModeUnsupported) Error() string {
	return "cpu: decimal mode is not supported"
}

// InvalidAddressMode reports an instruction invoked against an addressing
// mode it cannot compute an effective address for (Implicit, Accumulator,
// Relative routed through the generic memory-operand path).
type InvalidAddressMode struct {
	Mode AddressingMode
}

func (e *InvalidAddressMode) Error() string {
	return fmt.Sprintf("cpu: invalid address mode %s for effective-address computation", e.Mode)
}

// ResetFailed reports that the reset sequence could not read the reset
// vector.
type ResetFailed struct {
	Cause error
}

func (e *ResetFailed) Error() string {
	return fmt.Sprintf("cpu: reset failed: %v", e.Cause)
}

func (e *ResetFailed) Unwrap() error { return e.Cause }

// InterruptFailed reports that an interrupt sequence could not push to the
// stack or read its vector.
type InterruptFailed struct {
	Cause error
}

func (e *InterruptFailed) Error() string {
	return fmt.Sprintf("cpu: interrupt failed: %v", e.Cause)
}

func (e *InterruptFailed) Unwrap() error { return e.Cause }

// EndlessLoop reports that TickUntilNop's 2,000-tick safety bound
// tripped before a NOP was reached. It is a test-helper error only.
type EndlessLoop struct {
	Ticks int
}

func (e *EndlessLoop) Error() string {
	return fmt.Sprintf("cpu: endless loop, gave up after %d ticks", e.Ticks)
}
