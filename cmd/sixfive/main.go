// Command sixfive is the thin CLI front-end: it loads a program (raw
// bytes or assembly source), wires it onto a bus behind a fresh CPU, and
// drives ticks from an oscillator until the process is killed or the CPU
// reports an error.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"sixfive/asm"
	"sixfive/bus"
	"sixfive/cpu"
	"sixfive/debug"
	"sixfive/internal/xlog"
	"sixfive/mem"
	"sixfive/osc"
)

func main() {
	app := &cli.App{
		Name:  "sixfive",
		Usage: "run a MOS 6502 program",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bin",
				Usage: "program bytes (hex) or assembly source; '-' reads stdin",
			},
			&cli.BoolFlag{
				Name:  "asm",
				Usage: "interpret --bin as assembly source instead of raw hex bytes",
			},
			&cli.Float64Flag{
				Name:  "mhz",
				Usage: "target clock frequency in megahertz",
				Value: 1.79,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "verbose logging to stderr",
			},
			&cli.BoolFlag{
				Name:  "inspect",
				Usage: "step through the program in the interactive TUI inspector instead of free-running",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "sixfive:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := xlog.NewLogger(os.Stderr, slog.LevelInfo, c.Bool("debug"))

	src, err := readSource(c.String("bin"))
	if err != nil {
		return err
	}

	var image *mem.Memory
	if c.Bool("asm") {
		assembled, long, aerr := asm.Default().Assemble(src)
		if aerr != nil {
			return aerr
		}
		if long {
			logger.Warn("assembled image exceeded 64 KiB, truncated")
		}
		image = assembled
	} else {
		raw, err := hex.DecodeString(src)
		if err != nil {
			return fmt.Errorf("sixfive: --bin is neither valid hex nor --asm was given: %w", err)
		}
		image = mem.FromBytes(raw)
	}
	return runMachine(c, image, logger)
}

func readSource(bin string) (string, error) {
	if bin == "" {
		return "", errors.New("sixfive: --bin is required")
	}
	if bin == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("sixfive: reading stdin: %w", err)
		}
		return string(data), nil
	}
	return bin, nil
}

func runMachine(c *cli.Context, image *mem.Memory, logger *slog.Logger) error {
	b := bus.New()
	b.Connect("memory", 0x0000, 0xffff, image)

	machine := cpu.New(b, cpu.Original)
	if err := machine.Reset(); err != nil {
		return fmt.Errorf("sixfive: reset: %w", err)
	}

	if c.Bool("inspect") {
		if err := debug.Run(machine); err != nil {
			return fmt.Errorf("sixfive: %w", err)
		}
		return nil
	}

	oscillator := osc.FromMegahertz(c.Float64("mhz"))
	oscillator.Connect("cpu", machine)

	logger.Info("running", "mhz", c.Float64("mhz"))
	for {
		if err := oscillator.Tick(); err != nil {
			return fmt.Errorf("sixfive: %w", err)
		}
	}
}
