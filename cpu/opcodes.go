package cpu

// Opcode is one entry of the total 256-byte decode table: which
// instruction, which addressing mode, and the base cycle count before any
// page-cross or branch penalty, matching the standard MOS 6502 published
// opcode matrix.
type Opcode struct {
	Name   string
	Mode   AddressingMode
	Cycles byte
	exec   instrFunc
}

// opcodes is the total decode table. A byte with no entry is an
// unassigned opcode and decodes to BadOpCode.
var opcodes = map[byte]Opcode{
	0x69: {"ADC", Immediate, 2, adc},
	0x65: {"ADC", ZeroPage, 3, adc},
	0x75: {"ADC", ZeroPageX, 4, adc},
	0x6d: {"ADC", Absolute, 4, adc},
	0x7d: {"ADC", AbsoluteX, 4, adc},
	0x79: {"ADC", AbsoluteY, 4, adc},
	0x61: {"ADC", IndexedIndirect, 6, adc},
	0x71: {"ADC", IndirectIndexed, 5, adc},

	0x29: {"AND", Immediate, 2, and},
	0x25: {"AND", ZeroPage, 3, and},
	0x35: {"AND", ZeroPageX, 4, and},
	0x2d: {"AND", Absolute, 4, and},
	0x3d: {"AND", AbsoluteX, 4, and},
	0x39: {"AND", AbsoluteY, 4, and},
	0x21: {"AND", IndexedIndirect, 6, and},
	0x31: {"AND", IndirectIndexed, 5, and},

	0x0a: {"ASL", Accumulator, 2, asl},
	0x06: {"ASL", ZeroPage, 5, asl},
	0x16: {"ASL", ZeroPageX, 6, asl},
	0x0e: {"ASL", Absolute, 6, asl},
	0x1e: {"ASL", AbsoluteX, 7, asl},

	0x90: {"BCC", Relative, 2, bcc},
	0xb0: {"BCS", Relative, 2, bcs},
	0xf0: {"BEQ", Relative, 2, beq},
	0x30: {"BMI", Relative, 2, bmi},
	0xd0: {"BNE", Relative, 2, bne},
	0x10: {"BPL", Relative, 2, bpl},
	0x50: {"BVC", Relative, 2, bvc},
	0x70: {"BVS", Relative, 2, bvs},

	0x24: {"BIT", ZeroPage, 3, bit},
	0x2c: {"BIT", Absolute, 4, bit},

	0x00: {"BRK", Implicit, 7, brk},

	0x18: {"CLC", Implicit, 2, clc},
	0xd8: {"CLD", Implicit, 2, cld},
	0x58: {"CLI", Implicit, 2, cli},
	0xb8: {"CLV", Implicit, 2, clv},

	0xc9: {"CMP", Immediate, 2, cmp},
	0xc5: {"CMP", ZeroPage, 3, cmp},
	0xd5: {"CMP", ZeroPageX, 4, cmp},
	0xcd: {"CMP", Absolute, 4, cmp},
	0xdd: {"CMP", AbsoluteX, 4, cmp},
	0xd9: {"CMP", AbsoluteY, 4, cmp},
	0xc1: {"CMP", IndexedIndirect, 6, cmp},
	0xd1: {"CMP", IndirectIndexed, 5, cmp},

	0xe0: {"CPX", Immediate, 2, cpx},
	0xe4: {"CPX", ZeroPage, 3, cpx},
	0xec: {"CPX", Absolute, 4, cpx},

	0xc0: {"CPY", Immediate, 2, cpy},
	0xc4: {"CPY", ZeroPage, 3, cpy},
	0xcc: {"CPY", Absolute, 4, cpy},

	0xc6: {"DEC", ZeroPage, 5, dec},
	0xd6: {"DEC", ZeroPageX, 6, dec},
	0xce: {"DEC", Absolute, 6, dec},
	0xde: {"DEC", AbsoluteX, 7, dec},

	0xca: {"DEX", Implicit, 2, dex},
	0x88: {"DEY", Implicit, 2, dey},

	0x49: {"EOR", Immediate, 2, eor},
	0x45: {"EOR", ZeroPage, 3, eor},
	0x55: {"EOR", ZeroPageX, 4, eor},
	0x4d: {"EOR", Absolute, 4, eor},
	0x5d: {"EOR", AbsoluteX, 4, eor},
	0x59: {"EOR", AbsoluteY, 4, eor},
	0x41: {"EOR", IndexedIndirect, 6, eor},
	0x51: {"EOR", IndirectIndexed, 5, eor},

	0xe6: {"INC", ZeroPage, 5, inc},
	0xf6: {"INC", ZeroPageX, 6, inc},
	0xee: {"INC", Absolute, 6, inc},
	0xfe: {"INC", AbsoluteX, 7, inc},

	0xe8: {"INX", Implicit, 2, inx},
	0xc8: {"INY", Implicit, 2, iny},

	0x4c: {"JMP", Absolute, 3, jmp},
	0x6c: {"JMP", Indirect, 5, jmp},

	0x20: {"JSR", Absolute, 6, jsr},

	0xa9: {"LDA", Immediate, 2, lda},
	0xa5: {"LDA", ZeroPage, 3, lda},
	0xb5: {"LDA", ZeroPageX, 4, lda},
	0xad: {"LDA", Absolute, 4, lda},
	0xbd: {"LDA", AbsoluteX, 4, lda},
	0xb9: {"LDA", AbsoluteY, 4, lda},
	0xa1: {"LDA", IndexedIndirect, 6, lda},
	0xb1: {"LDA", IndirectIndexed, 5, lda},

	0xa2: {"LDX", Immediate, 2, ldx},
	0xa6: {"LDX", ZeroPage, 3, ldx},
	0xb6: {"LDX", ZeroPageY, 4, ldx},
	0xae: {"LDX", Absolute, 4, ldx},
	0xbe: {"LDX", AbsoluteY, 4, ldx},

	0xa0: {"LDY", Immediate, 2, ldy},
	0xa4: {"LDY", ZeroPage, 3, ldy},
	0xb4: {"LDY", ZeroPageX, 4, ldy},
	0xac: {"LDY", Absolute, 4, ldy},
	0xbc: {"LDY", AbsoluteX, 4, ldy},

	0x4a: {"LSR", Accumulator, 2, lsr},
	0x46: {"LSR", ZeroPage, 5, lsr},
	0x56: {"LSR", ZeroPageX, 6, lsr},
	0x4e: {"LSR", Absolute, 6, lsr},
	0x5e: {"LSR", AbsoluteX, 7, lsr},

	0xea: {"NOP", Implicit, 2, nop},

	0x09: {"ORA", Immediate, 2, ora},
	0x05: {"ORA", ZeroPage, 3, ora},
	0x15: {"ORA", ZeroPageX, 4, ora},
	0x0d: {"ORA", Absolute, 4, ora},
	0x1d: {"ORA", AbsoluteX, 4, ora},
	0x19: {"ORA", AbsoluteY, 4, ora},
	0x01: {"ORA", IndexedIndirect, 6, ora},
	0x11: {"ORA", IndirectIndexed, 5, ora},

	0x48: {"PHA", Implicit, 3, pha},
	0x08: {"PHP", Implicit, 3, php},
	0x68: {"PLA", Implicit, 4, pla},
	0x28: {"PLP", Implicit, 4, plp},

	0x2a: {"ROL", Accumulator, 2, rol},
	0x26: {"ROL", ZeroPage, 5, rol},
	0x36: {"ROL", ZeroPageX, 6, rol},
	0x2e: {"ROL", Absolute, 6, rol},
	0x3e: {"ROL", AbsoluteX, 7, rol},

	0x6a: {"ROR", Accumulator, 2, ror},
	0x66: {"ROR", ZeroPage, 5, ror},
	0x76: {"ROR", ZeroPageX, 6, ror},
	0x6e: {"ROR", Absolute, 6, ror},
	0x7e: {"ROR", AbsoluteX, 7, ror},

	0x40: {"RTI", Implicit, 6, rti},
	0x60: {"RTS", Implicit, 6, rts},

	0xe9: {"SBC", Immediate, 2, sbc},
	0xe5: {"SBC", ZeroPage, 3, sbc},
	0xf5: {"SBC", ZeroPageX, 4, sbc},
	0xed: {"SBC", Absolute, 4, sbc},
	0xfd: {"SBC", AbsoluteX, 4, sbc},
	0xf9: {"SBC", AbsoluteY, 4, sbc},
	0xe1: {"SBC", IndexedIndirect, 6, sbc},
	0xf1: {"SBC", IndirectIndexed, 5, sbc},

	0x38: {"SEC", Implicit, 2, sec},
	0xf8: {"SED", Implicit, 2, sed},
	0x78: {"SEI", Implicit, 2, sei},

	0x85: {"STA", ZeroPage, 3, sta},
	0x95: {"STA", ZeroPageX, 4, sta},
	0x8d: {"STA", Absolute, 4, sta},
	0x9d: {"STA", AbsoluteX, 5, sta},
	0x99: {"STA", AbsoluteY, 5, sta},
	0x81: {"STA", IndexedIndirect, 6, sta},
	0x91: {"STA", IndirectIndexed, 6, sta},

	0x86: {"STX", ZeroPage, 3, stx},
	0x96: {"STX", ZeroPageY, 4, stx},
	0x8e: {"STX", Absolute, 4, stx},

	0x84: {"STY", ZeroPage, 3, sty},
	0x94: {"STY", ZeroPageX, 4, sty},
	0x8c: {"STY", Absolute, 4, sty},

	0xaa: {"TAX", Implicit, 2, tax},
	0xa8: {"TAY", Implicit, 2, tay},
	0xba: {"TSX", Implicit, 2, tsx},
	0x8a: {"TXA", Implicit, 2, txa},
	0x9a: {"TXS", Implicit, 2, txs},
	0x98: {"TYA", Implicit, 2, tya},
}
