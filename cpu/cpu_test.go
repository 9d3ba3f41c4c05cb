package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sixfive/bus"
	"sixfive/mem"
)

// newMachine builds a CPU over a single flat RAM device, loads program at
// origin, points the reset vector at origin, and resets.
func newMachine(t *testing.T, origin uint16, program []byte) *CPU {
	t.Helper()
	m := mem.New()
	for i, b := range program {
		m.Write(origin+uint16(i), b)
	}
	m.Write(0xfffc, byte(origin&0xff))
	m.Write(0xfffd, byte(origin>>8))

	b := bus.New()
	b.Connect("ram", 0x0000, 0xffff, m)

	c := New(b, Fast)
	require.NoError(t, c.Reset())
	return c
}

func TestResetLoadsVectorAndClearsRegisters(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xea})
	assert.Equal(t, uint16(0x8000), c.PC())
	assert.Equal(t, byte(0xff), c.SP())
	assert.Equal(t, byte(0), c.A())
	assert.Equal(t, byte(0), c.X())
	assert.Equal(t, byte(0), c.Y())
	assert.False(t, c.Flags().InterruptDisable)
}

func TestResetIdempotent(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xa9, 0x42, 0xea})
	require.NoError(t, c.TickFor(1))
	assert.Equal(t, byte(0x42), c.A())

	require.NoError(t, c.Reset())
	first := c.Snapshot()
	require.NoError(t, c.Reset())
	second := c.Snapshot()
	assert.Equal(t, first.PC, second.PC)
	assert.Equal(t, first.SP, second.SP)
	assert.Equal(t, first.A, second.A)
}

func TestStackPushPopSymmetry(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xea})
	sp := c.SP()
	require.NoError(t, c.push(0x77))
	got, err := c.pop()
	require.NoError(t, err)
	assert.Equal(t, byte(0x77), got)
	assert.Equal(t, sp, c.SP())
}

func TestStackWrapsWithoutError(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xea})
	c.sp = 0x00
	require.NoError(t, c.push(0x11))
	assert.Equal(t, byte(0xff), c.SP())
}

func TestLdaImmediateSetsFlags(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xa9, 0x00, 0xea})
	require.NoError(t, c.TickFor(1))
	assert.True(t, c.Flags().Zero)
	assert.False(t, c.Flags().Negative)
}

func TestLdaNegativeFlag(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xa9, 0x80, 0xea})
	require.NoError(t, c.TickFor(1))
	assert.False(t, c.Flags().Zero)
	assert.True(t, c.Flags().Negative)
}

func TestAdcCarryAndOverflow(t *testing.T) {
	// 0x50 + 0x50 = 0xA0: signed overflow (positive + positive = negative).
	c := newMachine(t, 0x8000, []byte{0xa9, 0x50, 0x69, 0x50, 0xea})
	require.NoError(t, c.TickFor(2))
	assert.Equal(t, byte(0xa0), c.A())
	assert.True(t, c.Flags().Overflow)
	assert.False(t, c.Flags().Carry)
}

func TestJsrRtsReturnsToInstructionAfterCall(t *testing.T) {
	// JSR $8005; NOP ; ... ; $8005: RTS
	c := newMachine(t, 0x8000, []byte{0x20, 0x05, 0x80, 0xea, 0x00, 0x60})
	require.NoError(t, c.TickFor(1)) // JSR
	assert.Equal(t, uint16(0x8005), c.PC())
	require.NoError(t, c.TickFor(1)) // RTS
	assert.Equal(t, uint16(0x8003), c.PC())
}

func TestBranchTakenNoOffByOne(t *testing.T) {
	// CLC; BCC +2 (skip the LDA); LDA #$20; NOP
	c := newMachine(t, 0x8000, []byte{0x18, 0x90, 0x02, 0xa9, 0x20, 0xea})
	require.NoError(t, c.TickFor(2))
	assert.Equal(t, uint16(0x8005), c.PC())
	assert.Equal(t, byte(0), c.A())
}

func TestCompareLaw(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xa9, 0x10, 0xc9, 0x10, 0xea})
	require.NoError(t, c.TickFor(2))
	assert.True(t, c.Flags().Carry)
	assert.True(t, c.Flags().Zero)
	assert.False(t, c.Flags().Negative)
}

func TestBadOpcode(t *testing.T) {
	c := newMachine(t, 0x8000, []byte{0xff})
	err := c.Tick()
	require.Error(t, err)
	var bad *BadOpCode
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte(0xff), bad.Op)
}

func TestOriginalModeBurnsCyclesBeforeFetchingNext(t *testing.T) {
	m := mem.New()
	m.Write(0x8000, 0xa9) // LDA #$42 -- 2 cycles
	m.Write(0x8001, 0x42)
	m.Write(0x8002, 0xea) // NOP
	m.Write(0xfffc, 0x00)
	m.Write(0xfffd, 0x80)
	b := bus.New()
	b.Connect("ram", 0, 0xffff, m)
	c := New(b, Original)
	require.NoError(t, c.Reset())

	require.NoError(t, c.Tick()) // fetch+execute LDA, remaining = 1
	assert.Equal(t, byte(0x42), c.A())
	assert.Equal(t, 1, c.Remaining())

	require.NoError(t, c.Tick()) // burns the remaining cycle, no new fetch
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, byte(0x42), c.A())
}

func TestEndlessLoopBound(t *testing.T) {
	// JMP $8000 forever.
	c := newMachine(t, 0x8000, []byte{0x4c, 0x00, 0x80})
	err := c.TickUntilNop()
	require.Error(t, err)
	var el *EndlessLoop
	require.ErrorAs(t, err, &el)
}

func TestOutOfBoundsRead(t *testing.T) {
	b := bus.New()
	// no devices connected at all.
	c := New(b, Fast)
	err := c.Reset()
	require.Error(t, err)
	var rf *ResetFailed
	require.ErrorAs(t, err, &rf)
}
