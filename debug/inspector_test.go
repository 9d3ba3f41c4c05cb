package debug

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixfive/bus"
	"sixfive/cpu"
	"sixfive/mem"
)

func newInspectedMachine(t *testing.T) *cpu.CPU {
	t.Helper()
	m := mem.New()
	program := []byte{0xa9, 0x20, 0xea} // LDA #$20; NOP
	for i, b := range program {
		m.Write(0x0200+uint16(i), b)
	}
	m.Write(0xfffc, 0x00)
	m.Write(0xfffd, 0x02)

	b := bus.New()
	b.Connect("ram", 0, 0xffff, m)
	machine := cpu.New(b, cpu.Fast)
	require.NoError(t, machine.Reset())
	return machine
}

func TestUpdateSpaceAdvancesOneTick(t *testing.T) {
	machine := newInspectedMachine(t)
	m := model{machine: machine}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.Nil(t, cmd)
	nm := next.(model)
	assert.Equal(t, byte(0x20), nm.machine.A())
	assert.Equal(t, uint16(0x0200), nm.prevPC)
}

func TestUpdateJAdvancesOneTick(t *testing.T) {
	machine := newInspectedMachine(t)
	m := model{machine: machine}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	assert.Equal(t, byte(0x20), next.(model).machine.A())
}

func TestUpdateQQuits(t *testing.T) {
	m := model{machine: newInspectedMachine(t)}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
}

func TestUpdateIgnoresNonKeyMessages(t *testing.T) {
	machine := newInspectedMachine(t)
	m := model{machine: machine}

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, m, next)
}

func TestViewContainsRegistersAndPageTable(t *testing.T) {
	m := model{machine: newInspectedMachine(t)}

	out := m.View()

	assert.Contains(t, out, "PC:")
	assert.Contains(t, out, "0200")
}
