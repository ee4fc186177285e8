// Package cpu implements the MOS 6510/6502 instruction set: the
// opcode table, addressing-mode resolver, the arithmetic/logic/
// transfer/branch/stack/control primitives and the interrupt entry
// sequence. It is a pure, synchronous instruction interpreter over a
// caller-supplied memory.Bank; it owns no goroutines, timers or
// devices.
package cpu

import (
	"fmt"

	"github.com/sixfiveten/emu6510/memory"
)

// Sender is implemented by anything that can hold an interrupt line
// high against the chip: a CIA timer, a VIC raster interrupt, a
// cartridge line. The chip polls Raised in InterruptHandler; whether
// the source treats its line as level- or edge-triggered is the
// source's own bookkeeping.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}

// CPUType selects which documented variant's quirks Step honors.
type CPUType int

const (
	CPU_UNIMPLEMENTED CPUType = iota // Start of valid enumerations.
	CPU_NMOS                         // Base NMOS 6502/6510 including illegal opcodes.
	CPU_NMOS_RICOH                   // Ricoh 2A03/2A07 variant - NMOS but BCD is unimplemented.
	CPU_CMOS                         // 65C02 - only the JMP indirect page-wrap fix is modeled; every opcode otherwise decodes and executes as on NMOS.
	CPU_MAX                          // End of valid enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1 once status is packed.
	P_B         = uint8(0x10) // Only present in a pushed status byte.
	P_DECIMAL   = uint8(0x08)
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)
)

// IRQStatus bit positions for the latch the host writes between Step calls.
const (
	IRQPending = uint8(0x01)
	NMIPending = uint8(0x02)
)

// Chip is the processor-state aggregate: registers, flags, the cycle
// counter and the transient fields the addressing-mode resolver and
// step driver use to pass data between each other within one Step.
type Chip struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	SP uint8  // Stack pointer; stack lives at $0100-$01FF
	PC uint16 // Program counter

	N, V, B, D, I, Z, C bool // Processor flags

	Cycles uint64 // Monotonically increasing elapsed-cycle counter

	PageCrossed bool   // Set by the addressing-mode resolver, consumed by Step
	AddrPtr     uint16 // Resolved effective address for non-relative modes
	AddrRel     int8   // Signed branch offset for RELATIVE mode

	IRQStatus uint8 // Bit 0: IRQ pending. Bit 1: NMI pending.

	halted     bool
	haltOpcode uint8

	cpuType CPUType
	ram     memory.Bank

	// irqSources and nmiSources let a host device assert an interrupt
	// without the chip knowing anything about it beyond Sender. These
	// are polled in InterruptHandler alongside the IRQStatus latch,
	// which remains the simpler option for hosts that don't model
	// discrete devices.
	irqSources []Sender
	nmiSources []Sender
}

// AddIRQSource registers a level-triggered IRQ source polled on every
// InterruptHandler call.
func (c *Chip) AddIRQSource(s Sender) {
	c.irqSources = append(c.irqSources, s)
}

// AddNMISource registers an edge-triggered NMI source polled on every
// InterruptHandler call.
func (c *Chip) AddNMISource(s Sender) {
	c.nmiSources = append(c.nmiSources, s)
}

func (c *Chip) anyRaised(sources []Sender) bool {
	for _, s := range sources {
		if s.Raised() {
			return true
		}
	}
	return false
}

// InvalidCPUState reports a precondition failure, such as New being
// given a CPUType outside the valid range. It is a typed error rather
// than a panic.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode reports that a JAM opcode halted the processor.
type HaltOpcode struct {
	Opcode uint8
	PC     uint16
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed at PC 0x%.4X", e.Opcode, e.PC)
}

// New creates a Chip of the given type bound to the supplied memory bank
// and returns it already reset (PowerOn semantics: registers/flags
// cleared, PC loaded from the reset vector).
func New(cpuType CPUType, ram memory.Bank) (*Chip, error) {
	if cpuType <= CPU_UNIMPLEMENTED || cpuType >= CPU_MAX {
		return nil, InvalidCPUState{Reason: fmt.Sprintf("CPU type %d is invalid", cpuType)}
	}
	c := &Chip{
		cpuType: cpuType,
		ram:     ram,
	}
	c.Initialise()
	return c, nil
}

// Initialise implements the core's power-on/reset entry point: clears
// A/X/Y and all flags, sets SP to $FD and loads PC from the reset
// vector ($FFFC/$FFFD). Unlike real hardware power-on this never
// randomizes register state, so conformance ROMs see a deterministic
// starting point every run.
func (c *Chip) Initialise() {
	c.A, c.X, c.Y = 0, 0, 0
	c.N, c.V, c.B, c.D, c.I, c.Z, c.C = false, false, false, false, false, false, false
	c.SP = 0xFD
	c.Cycles = 0
	c.PageCrossed = false
	c.AddrPtr = 0
	c.AddrRel = 0
	c.IRQStatus = 0
	c.halted = false
	c.haltOpcode = 0
	c.PC = c.ReadWord(RESET_VECTOR)
}

// Halted reports whether the processor is trapped in a JAM opcode.
func (c *Chip) Halted() bool {
	return c.halted
}

// Step executes exactly one instruction: fetch, look up, resolve
// addressing, run the primitive, and account for cycles including any
// page-cross penalty. Returns HaltOpcode if the opcode fetched is JAM,
// and again on every later call without executing anything; otherwise
// it never errors, since the opcode table is fully populated and the
// address space is a fixed 64KiB array.
func (c *Chip) Step() error {
	if c.halted {
		return HaltOpcode{Opcode: c.haltOpcode, PC: c.PC}
	}

	op := c.FetchByte()
	entry := opcodes[op]

	c.Cycles += uint64(entry.cycles)
	c.PageCrossed = false

	c.resolve(entry.mode)
	entry.exec(c)

	if c.halted {
		c.haltOpcode = op
		return HaltOpcode{Opcode: op, PC: c.PC}
	}

	if c.PageCrossed && entry.pageCross == 1 {
		c.Cycles++
	}
	return nil
}

// InterruptHandler services a pending NMI or (if unmasked) IRQ latched
// in IRQStatus, clearing whichever latch it serviced. NMI always wins
// over IRQ when both are pending. Charges 7 cycles per spec, matching
// a real hardware interrupt sequence's length.
func (c *Chip) InterruptHandler() {
	if c.IRQStatus&NMIPending != 0 || c.anyRaised(c.nmiSources) {
		c.nmi()
		c.IRQStatus &^= NMIPending
		return
	}
	if !c.I && (c.IRQStatus&IRQPending != 0 || c.anyRaised(c.irqSources)) {
		c.irq()
		c.IRQStatus &^= IRQPending
	}
}

func (c *Chip) irq() {
	if c.I {
		return
	}
	c.pushWord(c.PC)
	c.B = false
	c.pushByte(c.PackFlags())
	c.I = true
	c.PC = c.ReadWord(IRQ_VECTOR)
	c.Cycles += 7
}

func (c *Chip) nmi() {
	c.pushWord(c.PC)
	c.B = false
	c.pushByte(c.PackFlags())
	c.I = true
	c.PC = c.ReadWord(NMI_VECTOR)
	c.Cycles += 7
}

func (c *Chip) setZN(v uint8) {
	c.Z = v == 0
	c.N = v&0x80 != 0
}
