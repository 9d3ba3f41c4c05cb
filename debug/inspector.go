// Package debug provides the interactive step-through inspector, which the
// CLI runs behind --inspect, and non-interactive hex-dump/register
// formatting. The inspector is a bubbletea TUI rendering a page table, a
// status panel, and a spew dump of the raw opcode byte sitting at PC; the
// byte is not decoded into an instruction name or addressing mode.
package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"sixfive/cpu"
)

const bytesPerPage = 16

type model struct {
	machine *cpu.CPU
	prevPC  uint16
	err     error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.machine.PC()
		if err := m.machine.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) renderPage(snap cpu.Snapshot, start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < bytesPerPage; i++ {
		addr := start + uint16(i)
		b := snap.Memory[addr]
		if addr == snap.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status(snap cpu.Snapshot) string {
	var flags string
	for _, set := range []bool{
		snap.Negative, snap.Overflow, true, snap.Break,
		snap.Decimal, snap.InterruptDisable, snap.Zero, snap.Carry,
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %02x
 A: %02x
 X: %02x
 Y: %02x
N V _ B D I Z C
`, snap.PC, m.prevPC, snap.SP, snap.A, snap.X, snap.Y) + flags
}

func (m model) pageTable(snap cpu.Snapshot) string {
	header := "page | "
	for b := 0; b < bytesPerPage; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	lines := []string{header}
	base := snap.PC &^ 0x0f
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(snap, uint16(int(base)+i*bytesPerPage)))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	snap := m.machine.Snapshot()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(snap),
			m.status(snap),
		),
		"",
		spew.Sdump(snap.Memory[snap.PC]),
	)
}

// Run starts the interactive inspector against an already-reset machine.
// Pressing space or 'j' advances one tick; 'q' quits.
func Run(machine *cpu.CPU) error {
	final, err := tea.NewProgram(model{machine: machine}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
