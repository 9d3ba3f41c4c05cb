package cpu

import "sixfive/mask"

// Flags holds the seven 6502 status bits. The packed byte layout (used by
// PHP, PLP, BRK and RTI) is canonical MOS 6502 order: N V - B D I Z C,
// with the unused bit always read back as 1. Packing and unpacking go
// through the mask package's 1-indexed bit helpers: each flag owns one
// fixed bit position, read and written consistently.
type Flags struct {
	Negative         bool
	Overflow         bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions in mask's 1-indexed-from-MSB scheme.
const (
	negativeBit  = mask.I1
	overflowBit  = mask.I2
	unusedBit    = mask.I3
	breakBit     = mask.I4
	decimalBit   = mask.I5
	interruptBit = mask.I6
	zeroBit      = mask.I7
	carryBit     = mask.I8

	setMask byte = 0b1000_0000
)

// Pack encodes f as a single status byte in canonical layout.
func Pack(f Flags) byte {
	var b byte
	if f.Negative {
		b = mask.Set(b, negativeBit, setMask)
	}
	if f.Overflow {
		b = mask.Set(b, overflowBit, setMask)
	}
	b = mask.Set(b, unusedBit, setMask)
	if f.Break {
		b = mask.Set(b, breakBit, setMask)
	}
	if f.Decimal {
		b = mask.Set(b, decimalBit, setMask)
	}
	if f.InterruptDisable {
		b = mask.Set(b, interruptBit, setMask)
	}
	if f.Zero {
		b = mask.Set(b, zeroBit, setMask)
	}
	if f.Carry {
		b = mask.Set(b, carryBit, setMask)
	}
	return b
}

// Unpack decodes a status byte produced by Pack back into Flags. It is the
// exact inverse of Pack: Unpack(Pack(f)) == f for every f.
func Unpack(b byte) Flags {
	return Flags{
		Negative:         mask.IsSet(b, negativeBit),
		Overflow:         mask.IsSet(b, overflowBit),
		Break:            mask.IsSet(b, breakBit),
		Decimal:          mask.IsSet(b, decimalBit),
		InterruptDisable: mask.IsSet(b, interruptBit),
		Zero:             mask.IsSet(b, zeroBit),
		Carry:            mask.IsSet(b, carryBit),
	}
}
