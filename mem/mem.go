// Package mem implements the flat 64 KiB RAM device that backs most
// sixfive systems: a single fixed-size array behind Read/Write, with two
// construction paths (empty, from raw bytes); package asm loads assembled
// images through FromBytes.
package mem

const Size = 1 << 16

// Memory is a flat, fully addressable 64 KiB byte array implementing
// bus.Addressable.
type Memory struct {
	data [Size]byte
}

// New returns a zero-filled 64 KiB Memory.
func New() *Memory {
	return &Memory{}
}

// FromBytes returns a Memory loaded with data at address 0, zero-padded
// out to 64 KiB. Input longer than 64 KiB is truncated to the first 64
// KiB, matching the behavior of an assembler image that overruns the
// address space.
func FromBytes(data []byte) *Memory {
	m := &Memory{}
	copy(m.data[:], data)
	return m
}

// Read returns the byte stored at addr. Every address in range is valid;
// Memory never reports out-of-bounds on its own.
func (m *Memory) Read(addr uint16) byte {
	return m.data[addr]
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value byte) {
	m.data[addr] = value
}

// InBounds always reports true: the address space fully covers uint16.
func (m *Memory) InBounds(addr uint16) bool {
	return true
}

// Snapshot returns a copy of the full 64 KiB image.
func (m *Memory) Snapshot() []byte {
	dump := make([]byte, Size)
	copy(dump, m.data[:])
	return dump
}
