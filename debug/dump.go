package debug

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"sixfive/cpu"
)

// DumpRegisters renders a Snapshot's register file and flags using spew
// for the structured part.
func DumpRegisters(snap cpu.Snapshot) string {
	cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
	return cfg.Sdump(struct {
		PC                                      uint16
		SP, A, X, Y                             byte
		Carry, Zero, InterruptDisable, Decimal  bool
		Break, Overflow, Negative               bool
	}{
		PC: snap.PC, SP: snap.SP, A: snap.A, X: snap.X, Y: snap.Y,
		Carry: snap.Carry, Zero: snap.Zero, InterruptDisable: snap.InterruptDisable,
		Decimal: snap.Decimal, Break: snap.Break, Overflow: snap.Overflow, Negative: snap.Negative,
	})
}

// HexDump renders a slice of memory in the traditional sixteen-bytes-per-
// line hexdump -C layout: offset, hex bytes, ASCII gutter.
func HexDump(mem []byte, start, length int) string {
	var b strings.Builder
	for off := start; off < start+length; off += 16 {
		fmt.Fprintf(&b, "%08x  ", off)
		end := off + 16
		if end > len(mem) {
			end = len(mem)
		}
		row := mem[off:end]
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&b, "%02x ", row[i])
			} else {
				b.WriteString("   ")
			}
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}
