// Package asm treats assembly source as an opaque transform, shelling out
// to an external assembler (vasm6502_oldstyle as a subprocess) and
// normalizing its output to a 64 KiB image. No assembler implementation
// lives in this module; this package only knows how to run one and shape
// its output.
package asm

import (
	"bytes"
	"fmt"
	"os/exec"

	"sixfive/mem"
)

// Assembler runs an external command that reads 6502 assembly source on
// stdin and writes a raw binary image to stdout.
type Assembler struct {
	// Command is the program name (and any fixed arguments) to invoke.
	// Defaults to vasm6502_oldstyle's raw-binary-output flags when empty.
	Command []string
}

// Default returns an Assembler invoking vasm6502_oldstyle in raw-binary
// output mode.
func Default() *Assembler {
	return &Assembler{Command: []string{"vasm6502_oldstyle", "-Fbin", "-dotdir", "-o", "/dev/stdout"}}
}

// AssembleError reports that the external assembler process failed,
// carrying its name and any diagnostic output it produced on stderr.
type AssembleError struct {
	Command string
	Stderr  string
	Cause   error
}

func (e *AssembleError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("asm: %s failed: %v: %s", e.Command, e.Cause, e.Stderr)
	}
	return fmt.Sprintf("asm: %s failed: %v", e.Command, e.Cause)
}

func (e *AssembleError) Unwrap() error { return e.Cause }

// Assemble runs the configured command with source on stdin and returns a
// Memory built from its stdout, zero-padded or truncated to exactly 64
// KiB. A truncation is reported through long but never treated as fatal:
// callers that care can check it.
func (a *Assembler) Assemble(source string) (image *mem.Memory, long bool, err error) {
	cmdline := a.Command
	if len(cmdline) == 0 {
		cmdline = Default().Command
	}
	name, args := cmdline[0], cmdline[1:]

	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader([]byte(source))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, false, &AssembleError{Command: name, Stderr: stderr.String(), Cause: err}
	}

	out := stdout.Bytes()
	long = len(out) > 65536
	if long {
		out = out[:65536]
	}
	return mem.FromBytes(out), long, nil
}
