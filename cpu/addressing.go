package cpu

import "sixfive/addr"

// AddressingMode identifies how an instruction locates its operand, named
// and grouped after the standard MOS 6502 reference: IndexedIndirect and
// IndirectIndexed are kept distinct from plain indexed modes, and Implicit
// and Accumulator get their own cases rather than falling back to a
// catch-all.
type AddressingMode int

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (d,X)
	IndirectIndexed // (d),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implicit:
		return "Implicit"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	default:
		return "Unknown"
	}
}

// resolved carries the outcome of computing an effective address: the
// address itself (meaningless for Implicit/Accumulator/Relative, which
// resolve() never services), and whether the computation crossed a page
// boundary (for the AbsoluteX/AbsoluteY/IndirectIndexed cycle penalty).
type resolved struct {
	addr        uint16
	pageCrossed bool
}

// resolve computes the effective address for every mode that has a
// memory operand. Implicit, Accumulator and Relative are handled by their
// own instructions directly and are rejected here with
// InvalidAddressMode: they have no uniform "effective address" notion.
func (c *CPU) resolve(mode AddressingMode) (resolved, error) {
	switch mode {
	case Immediate:
		operand := c.pc
		c.pc++
		return resolved{addr: operand}, nil

	case ZeroPage:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: addr.ZeroOf(b)}, nil

	case ZeroPageX:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: addr.ZeroOf(b + c.x)}, nil

	case ZeroPageY:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: addr.ZeroOf(b + c.y)}, nil

	case Absolute:
		w, err := c.fetchWord()
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: w}, nil

	case AbsoluteX:
		w, err := c.fetchWord()
		if err != nil {
			return resolved{}, err
		}
		effective := w + uint16(c.x)
		return resolved{addr: effective, pageCrossed: crossesPage(w, effective)}, nil

	case AbsoluteY:
		w, err := c.fetchWord()
		if err != nil {
			return resolved{}, err
		}
		effective := w + uint16(c.y)
		return resolved{addr: effective, pageCrossed: crossesPage(w, effective)}, nil

	case Indirect:
		ptr, err := c.fetchWord()
		if err != nil {
			return resolved{}, err
		}
		effective, err := c.readWordAbs(ptr)
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: effective}, nil

	case IndexedIndirect:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		ptr := addr.ZeroOf(b + c.x)
		effective, err := c.readWordZeroPage(ptr)
		if err != nil {
			return resolved{}, err
		}
		return resolved{addr: effective}, nil

	case IndirectIndexed:
		b, err := c.fetch()
		if err != nil {
			return resolved{}, err
		}
		base, err := c.readWordZeroPage(addr.ZeroOf(b))
		if err != nil {
			return resolved{}, err
		}
		effective := base + uint16(c.y)
		return resolved{addr: effective, pageCrossed: crossesPage(base, effective)}, nil

	default:
		return resolved{}, &InvalidAddressMode{Mode: mode}
	}
}

// crossesPage reports whether adding an index to base moved into a
// different 256-byte page.
func crossesPage(base, effective uint16) bool {
	_, baseHigh := addr.Split(base)
	_, effectiveHigh := addr.Split(effective)
	return baseHigh != effectiveHigh
}
