// conformance drives the core against the standard 6502/6510
// conformance test ROMs and prints a colorized pass/fail banner per
// suite. Each suite's load address and success condition comes from
// its own documentation. One subcommand per suite, plus "all".
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/urfave/cli.v2"

	"github.com/sixfiveten/emu6510/c64mem"
	"github.com/sixfiveten/emu6510/cpu"
	"github.com/sixfiveten/emu6510/loader"
	"github.com/sixfiveten/emu6510/memory"
)

var (
	pass = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	fail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	name = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dim  = lipgloss.NewStyle().Faint(true)
)

// suite describes one conformance ROM: where it loads, where it
// starts, how long the harness is willing to step before giving up,
// and how to decide pass/fail once the ROM traps (two identical
// consecutive PC values, the terminal condition all of these ROMs use
// in lieu of a syscall to signal completion).
type suite struct {
	cmdName   string
	name      string
	file      string
	loadAddr  uint16
	startPC   uint16
	maxSteps  int
	withIRQFB bool // mirror $BFFC into IRQStatus every step (interrupt test)
	check     func(c *cpu.Chip, r memory.Bank) error
}

var suites = []suite{
	{
		cmdName:  "allsuitea",
		name:     "AllSuiteA",
		file:     "AllSuiteA.bin",
		loadAddr: 0x4000,
		startPC:  0x4000,
		maxSteps: 10_000_000,
		check: func(c *cpu.Chip, r memory.Bank) error {
			return runUntilPC(c, 10_000_000, 0x45C0, func() error {
				if got := r.Read(0x0210); got != 0xFF {
					return fmt.Errorf("$0210 = 0x%.2X, want 0xFF", got)
				}
				return nil
			})
		},
	},
	{
		cmdName:  "decimal",
		name:     "Bruce Clark decimal mode",
		file:     "6502_decimal_test.bin",
		loadAddr: 0x0200,
		startPC:  0x0200,
		maxSteps: 5_000_000,
		check: func(c *cpu.Chip, r memory.Bank) error {
			return runUntilPC(c, 5_000_000, 0x024B, func() error {
				if c.A != 0 {
					return fmt.Errorf("A = 0x%.2X, want 0x00", c.A)
				}
				return nil
			})
		},
	},
	{
		cmdName:   "interrupt",
		name:      "Klaus Dormann interrupt test",
		file:      "6502_interrupt_test.bin",
		loadAddr:  0x000A,
		startPC:   0x0400,
		maxSteps:  2_000_000,
		withIRQFB: true,
		check: func(c *cpu.Chip, r memory.Bank) error {
			return runUntilTrap(c, r, true, 2_000_000, 0x06F5)
		},
	},
	{
		cmdName:  "functional",
		name:     "Klaus Dormann functional test",
		file:     "6502_functional_test.bin",
		loadAddr: 0x0000,
		startPC:  0x0400,
		maxSteps: 100_000_000,
		check: func(c *cpu.Chip, r memory.Bank) error {
			return runUntilTrap(c, r, false, 100_000_000, 0x3469)
		},
	},
	{
		cmdName:  "timing",
		name:     "Timing test",
		file:     "timingtest-1.bin",
		loadAddr: 0x1000,
		startPC:  0x1000,
		maxSteps: 1_000_000,
		check: func(c *cpu.Chip, r memory.Bank) error {
			return runUntilPC(c, 1_000_000, 0x1269, func() error {
				if c.Cycles != 1141 {
					return fmt.Errorf("Cycles = %d, want 1141", c.Cycles)
				}
				return nil
			})
		},
	},
}

// runUntilPC steps c until PC equals want or maxSteps is exhausted,
// then invokes ok to judge the landing state.
func runUntilPC(c *cpu.Chip, maxSteps int, want uint16, ok func() error) error {
	for i := 0; i < maxSteps; i++ {
		if c.PC == want {
			return ok()
		}
		if err := c.Step(); err != nil {
			return fmt.Errorf("halted at PC 0x%.4X: %v", c.PC, err)
		}
	}
	return fmt.Errorf("did not reach 0x%.4X within %d steps", want, maxSteps)
}

// runUntilTrap steps c, optionally round-tripping the interrupt
// feedback register at $BFFC on every instruction, until two
// consecutive pre-step PCs are equal (the trap all these ROMs use to
// signal they're done), then compares the trap address to wantTrapPC.
func runUntilTrap(c *cpu.Chip, r memory.Bank, feedback bool, maxSteps int, wantTrapPC uint16) error {
	prev := uint16(0xFFFF)
	for i := 0; i < maxSteps; i++ {
		pc := c.PC
		if err := c.Step(); err != nil {
			return fmt.Errorf("halted at PC 0x%.4X: %v", pc, err)
		}
		if feedback {
			c.IRQStatus = r.Read(0xBFFC)
			c.InterruptHandler()
			r.Write(0xBFFC, c.IRQStatus)
		}
		if pc == prev {
			if pc != wantTrapPC {
				return fmt.Errorf("trapped at 0x%.4X, want 0x%.4X", pc, wantTrapPC)
			}
			return nil
		}
		prev = pc
	}
	return fmt.Errorf("did not trap within %d steps", maxSteps)
}

// newBank allocates either a flat RAM bank or, with useC64 set, a
// c64mem.Bank with no ROM images attached - every region falls
// through to RAM, which proves the core drives a bank-switched
// overlay exactly as it drives flat RAM, without needing real BASIC/
// KERNAL/char ROM dumps on hand.
func newBank(useC64 bool) (memory.Bank, error) {
	if useC64 {
		return c64mem.New(nil, nil, nil, nil, nil), nil
	}
	return memory.NewRAM(1<<16, nil)
}

func runSuite(romDir string, useC64 bool, s suite) error {
	data, err := os.ReadFile(filepath.Join(romDir, s.file))
	if err != nil {
		return fmt.Errorf("can't read %s: %w", s.file, err)
	}
	bank, err := newBank(useC64)
	if err != nil {
		return fmt.Errorf("can't allocate RAM: %w", err)
	}
	loader.LoadRaw(bank, s.loadAddr, data)

	c, err := cpu.New(cpu.CPU_NMOS, bank)
	if err != nil {
		return fmt.Errorf("can't init CPU: %w", err)
	}
	c.PC = s.startPC
	if s.withIRQFB {
		bank.Write(0xBFFC, 0)
	}
	return s.check(c, bank)
}

func reportSuite(romDir string, useC64 bool, s suite) bool {
	fmt.Printf("%s %s\n", name.Render("=>"), name.Render(s.name))
	if err := runSuite(romDir, useC64, s); err != nil {
		fmt.Printf("  %s %s\n", fail.Render("FAIL"), dim.Render(err.Error()))
		return false
	}
	fmt.Printf("  %s\n", pass.Render("PASS"))
	return true
}

func main() {
	romDirFlag := &cli.StringFlag{
		Name:    "rom_dir",
		Aliases: []string{"d"},
		Usage:   "directory containing the conformance ROM binaries",
		Value:   "testdata",
	}
	c64Flag := &cli.BoolFlag{
		Name:  "c64",
		Usage: "drive the core through a c64mem bank-switched overlay instead of flat RAM",
	}

	commands := make([]*cli.Command, 0, len(suites)+1)
	for _, s := range suites {
		s := s
		commands = append(commands, &cli.Command{
			Name:  s.cmdName,
			Usage: "run " + s.name,
			Flags: []cli.Flag{romDirFlag, c64Flag},
			Action: func(ctx *cli.Context) error {
				if !reportSuite(ctx.String("rom_dir"), ctx.Bool("c64"), s) {
					return cli.Exit("suite failed", 1)
				}
				return nil
			},
		})
	}
	runAll := func(ctx *cli.Context) error {
		romDir := ctx.String("rom_dir")
		useC64 := ctx.Bool("c64")
		failures := 0
		for _, s := range suites {
			if !reportSuite(romDir, useC64, s) {
				failures++
			}
		}
		if failures > 0 {
			return cli.Exit(fmt.Sprintf("%d suite(s) failed", failures), 1)
		}
		fmt.Println(pass.Render("all suites passed"))
		return nil
	}
	commands = append(commands, &cli.Command{
		Name:   "all",
		Usage:  "run every conformance suite",
		Flags:  []cli.Flag{romDirFlag, c64Flag},
		Action: runAll,
	})

	app := &cli.App{
		Name:     "conformance",
		Usage:    "run the 6502/6510 conformance ROM suite against this core",
		Version:  "v0.0.1",
		Flags:    []cli.Flag{romDirFlag, c64Flag},
		Commands: commands,
		// No subcommand named runs every suite, same as "all".
		Action: runAll,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
