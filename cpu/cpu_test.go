package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/sixfiveten/emu6510/memory"
)

// flatMemory is a bare RAM-backed memory.Bank used to drive the chip
// directly without any bank-switching overlay.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8     { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, v uint8) { r.addr[addr] = v }
func (r *flatMemory) PowerOn()                   {}
func (r *flatMemory) Parent() memory.Bank        { return nil }
func (r *flatMemory) DatabusVal() uint8          { return 0 }

func setReset(r *flatMemory, pc uint16) {
	r.addr[RESET_VECTOR] = uint8(pc & 0xFF)
	r.addr[RESET_VECTOR+1] = uint8(pc >> 8)
}

func newTestChip(t *testing.T, r *flatMemory, pc uint16) *Chip {
	t.Helper()
	setReset(r, pc)
	c, err := New(CPU_NMOS, r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func loadProgram(r *flatMemory, addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		r.addr[int(addr)+i] = b
	}
}

// TestResetVectorLoad verifies Initialise loads PC from the reset
// vector and sets the documented deterministic power-on state.
func TestResetVectorLoad(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	if c.PC != 0xC000 {
		t.Errorf("PC = 0x%.4X, want 0xC000", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("SP = 0x%.2X, want 0xFD", c.SP)
	}
	if c.A != 0 || c.X != 0 || c.Y != 0 {
		t.Errorf("registers not zeroed: A=%d X=%d Y=%d", c.A, c.X, c.Y)
	}
}

// TestAdcOverflowSequence runs LDA #$80 / CLC / ADC #$80 and checks the
// documented result: 0x80+0x80 wraps to 0x00 with carry and overflow
// both set and zero set, negative clear.
func TestAdcOverflowSequence(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000,
		0xA9, 0x80, // LDA #$80
		0x18,       // CLC
		0x69, 0x80, // ADC #$80
	)
	for i := 0; i < 3; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if c.A != 0x00 {
		t.Errorf("A = 0x%.2X, want 0x00\n%s", c.A, spew.Sdump(c))
	}
	if !c.C || !c.V || !c.Z || c.N {
		t.Errorf("flags C=%v V=%v Z=%v N=%v, want C=true V=true Z=true N=false", c.C, c.V, c.Z, c.N)
	}
}

// TestJsrRts verifies a JSR/RTS round trip returns to the instruction
// after the call, and that the stack pointer is restored.
func TestJsrRts(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000,
		0x20, 0x00, 0xD0, // JSR $D000
		0xEA, // NOP (landing spot)
	)
	loadProgram(r, 0xD000, 0x60) // RTS
	startSP := c.SP

	if err := c.Step(); err != nil { // JSR
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0xD000 {
		t.Fatalf("PC after JSR = 0x%.4X, want 0xD000", c.PC)
	}
	if err := c.Step(); err != nil { // RTS
		t.Fatalf("RTS: %v", err)
	}
	if c.PC != 0xC003 {
		t.Errorf("PC after RTS = 0x%.4X, want 0xC003", c.PC)
	}
	if c.SP != startSP {
		t.Errorf("SP after RTS = 0x%.2X, want 0x%.2X", c.SP, startSP)
	}
}

// TestBrkRti verifies BRK pushes PC+2/status with B set, jumps through
// the IRQ vector, and RTI restores the original PC and flags.
func TestBrkRti(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0x00, 0x00) // BRK <pad>
	r.addr[IRQ_VECTOR] = 0x00
	r.addr[IRQ_VECTOR+1] = 0xD0
	loadProgram(r, 0xD000, 0x40) // RTI

	c.C = true
	if err := c.Step(); err != nil { // BRK
		t.Fatalf("BRK: %v", err)
	}
	if c.PC != 0xD000 {
		t.Fatalf("PC after BRK = 0x%.4X, want 0xD000", c.PC)
	}
	if !c.I {
		t.Errorf("I not set after BRK")
	}
	if err := c.Step(); err != nil { // RTI
		t.Fatalf("RTI: %v", err)
	}
	if c.PC != 0xC002 {
		t.Errorf("PC after RTI = 0x%.4X, want 0xC002", c.PC)
	}
	if !c.C {
		t.Errorf("C flag lost across BRK/RTI round trip")
	}
}

// TestPageCrossPenalty verifies an extra cycle is charged for a read
// instruction whose indexed address crosses a page, and not charged
// when it stays within the page.
func TestPageCrossPenalty(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0xBD, 0xFF, 0x00) // LDA $00FF,X
	c.X = 1                                  // effective addr $0100: crosses page
	c.Step()
	if c.Cycles != 5 {
		t.Errorf("Cycles = %d, want 5 (page-crossed LDA abs,X)", c.Cycles)
	}

	r2 := &flatMemory{}
	c2 := newTestChip(t, r2, 0xC000)
	loadProgram(r2, 0xC000, 0xBD, 0x00, 0x00) // LDA $0000,X
	c2.X = 1
	c2.Step()
	if c2.Cycles != 4 {
		t.Errorf("Cycles = %d, want 4 (no page cross)", c2.Cycles)
	}
}

// TestBranchCycles verifies the three branch costs: 2 not taken, 3
// taken within the page, 4 taken across a page boundary.
func TestBranchCycles(t *testing.T) {
	tests := []struct {
		name   string
		pc     uint16
		offset uint8
		z      bool
		want   uint64
	}{
		{"not taken", 0xC000, 0x02, false, 2},
		{"taken same page", 0xC000, 0x02, true, 3},
		{"taken page crossed", 0xC0FD, 0x7F, true, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &flatMemory{}
			c := newTestChip(t, r, tc.pc)
			loadProgram(r, tc.pc, 0xF0, tc.offset) // BEQ
			c.Z = tc.z
			if err := c.Step(); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.Cycles != tc.want {
				t.Errorf("Cycles = %d, want %d", c.Cycles, tc.want)
			}
		})
	}
}

// TestJamHalts verifies an illegal JAM opcode halts the chip and
// subsequent Step calls return HaltOpcode without re-executing.
func TestJamHalts(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0x02) // JAM
	err := c.Step()
	if err == nil {
		t.Fatal("Step on JAM returned nil error, want HaltOpcode")
	}
	if _, ok := err.(HaltOpcode); !ok {
		t.Fatalf("Step on JAM returned %T, want HaltOpcode", err)
	}
	if !c.Halted() {
		t.Error("Halted() = false after JAM")
	}
	pcBefore := c.PC
	if err := c.Step(); err == nil {
		t.Fatal("Step after halt returned nil error")
	}
	if c.PC != pcBefore {
		t.Errorf("PC advanced after halt: 0x%.4X -> 0x%.4X", pcBefore, c.PC)
	}
}

// TestLaxLoadsBothRegisters spot-checks one of the undocumented
// opcodes the conformance ROMs exercise.
func TestLaxLoadsBothRegisters(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0xA7, 0x10) // LAX $10
	r.addr[0x10] = 0x42
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x42 || c.X != 0x42 {
		t.Errorf("A=0x%.2X X=0x%.2X, want both 0x42", c.A, c.X)
	}
}

// TestDecimalAdcZeroFlag is grounded on the known NMOS quirk that Z in
// decimal mode reflects the binary sum, not the BCD-corrected result:
// $99 + $01 is decimal-100 (wraps to $00 after BCD correction, which
// would read as zero) but the binary sum $9A is nonzero, so Z must be
// clear.
func TestDecimalAdcZeroFlag(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0x69, 0x01) // ADC #$01
	c.D = true
	c.A = 0x99
	c.C = false
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Z {
		t.Errorf("Z set after decimal 99+1, want clear (binary sum 0x9A is nonzero)")
	}
	if c.A != 0x00 {
		t.Errorf("A = 0x%.2X, want 0x00 (decimal-corrected 100 wraps)", c.A)
	}
	if !c.C {
		t.Error("C not set after decimal 99+1 (should carry out of the hundreds digit)")
	}
}

// TestAdcSbcRoundTrip verifies binary-mode ADC then SBC of the same
// operand (with carry re-preserved between them) restores A.
func TestAdcSbcRoundTrip(t *testing.T) {
	for _, start := range []uint8{0x00, 0x42, 0x7F, 0x80, 0xFF} {
		r := &flatMemory{}
		c := newTestChip(t, r, 0xC000)
		loadProgram(r, 0xC000,
			0x18,       // CLC
			0x69, 0x33, // ADC #$33
			0x38,       // SEC
			0xE9, 0x33, // SBC #$33
		)
		c.A = start
		for i := 0; i < 4; i++ {
			if err := c.Step(); err != nil {
				t.Fatalf("Step %d: %v", i, err)
			}
		}
		if c.A != start {
			t.Errorf("A = 0x%.2X after ADC/SBC round trip, want 0x%.2X", c.A, start)
		}
	}
}

// TestRolRorRoundTrip verifies ROL then ROR (carry preserved through
// the rotate) restores the accumulator.
func TestRolRorRoundTrip(t *testing.T) {
	for _, start := range []uint8{0x00, 0x01, 0x80, 0xA5, 0xFF} {
		r := &flatMemory{}
		c := newTestChip(t, r, 0xC000)
		loadProgram(r, 0xC000,
			0x2A, // ROL A
			0x6A, // ROR A
		)
		c.A = start
		for i := 0; i < 2; i++ {
			if err := c.Step(); err != nil {
				t.Fatalf("Step %d: %v", i, err)
			}
		}
		if c.A != start {
			t.Errorf("A = 0x%.2X after ROL/ROR round trip, want 0x%.2X", c.A, start)
		}
	}
}

// TestFlagsPackUnpackRoundTrip verifies PackFlags/UnpackFlags agree on
// every flag except B's push-time artifact, and that bit 5 is always
// forced to 1 on pack.
func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	c.N, c.V, c.D, c.I, c.Z, c.C = true, false, true, false, true, false

	packed := c.PackFlags()
	if packed&0x20 == 0 {
		t.Errorf("packed status 0x%.2X missing bit 5", packed)
	}

	var c2 Chip
	c2.UnpackFlags(packed)
	if diff := deep.Equal(
		[]bool{c.N, c.V, c.D, c.I, c.Z, c.C},
		[]bool{c2.N, c2.V, c2.D, c2.I, c2.Z, c2.C},
	); diff != nil {
		t.Errorf("flags did not round trip: %v", diff)
	}
}

// TestInterruptHandlerNmiPriority verifies NMI wins when both NMI and
// IRQ are pending simultaneously.
func TestInterruptHandlerNmiPriority(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	r.addr[NMI_VECTOR] = 0x00
	r.addr[NMI_VECTOR+1] = 0xD0
	r.addr[IRQ_VECTOR] = 0x00
	r.addr[IRQ_VECTOR+1] = 0xE0

	c.IRQStatus = IRQPending | NMIPending
	c.InterruptHandler()
	if c.PC != 0xD000 {
		t.Errorf("PC = 0x%.4X after simultaneous NMI+IRQ, want 0xD000 (NMI wins)", c.PC)
	}
	if c.IRQStatus != IRQPending {
		t.Errorf("IRQStatus = 0x%.2X, want IRQPending still latched", c.IRQStatus)
	}
}

// TestZeroPageIndexedWrap verifies zp,X addressing stays inside the
// zero page: base $FF with X=2 resolves to $0001, not $0101.
func TestZeroPageIndexedWrap(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0xB5, 0xFF) // LDA $FF,X
	c.X = 0x02
	r.addr[0x0001] = 0x55
	r.addr[0x0101] = 0xAA
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x55 {
		t.Errorf("A = 0x%.2X, want 0x55 (zero-page wrapped)", c.A)
	}
}

// TestIndirectYPointerWrap verifies the pointer read for ($FF),Y wraps
// within the zero page: the high byte comes from $00, not $0100.
func TestIndirectYPointerWrap(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	loadProgram(r, 0xC000, 0xB1, 0xFF) // LDA ($FF),Y
	r.addr[0x00FF] = 0x34
	r.addr[0x0000] = 0x12 // pointer high byte, wrapped
	r.addr[0x0100] = 0x99 // must NOT be used
	c.Y = 0x01
	r.addr[0x1235] = 0x77
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x77 {
		t.Errorf("A = 0x%.2X, want 0x77 (pointer wrapped in zero page)", c.A)
	}
}

// TestJmpIndirectPageWrap verifies JMP ($xxFF) fetches its high byte
// from $xx00 on NMOS parts while the CMOS variant carries into the
// next page.
func TestJmpIndirectPageWrap(t *testing.T) {
	setup := func(r *flatMemory) {
		loadProgram(r, 0xC000, 0x6C, 0xFF, 0x10) // JMP ($10FF)
		r.addr[0x10FF] = 0x00
		r.addr[0x1000] = 0x40 // NMOS high byte
		r.addr[0x1100] = 0x50 // CMOS high byte
	}

	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	setup(r)
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x4000 {
		t.Errorf("NMOS PC = 0x%.4X, want 0x4000 (page-wrap bug)", c.PC)
	}

	r2 := &flatMemory{}
	setReset(r2, 0xC000)
	c2, err := New(CPU_CMOS, r2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	setup(r2)
	if err := c2.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c2.PC != 0x5000 {
		t.Errorf("CMOS PC = 0x%.4X, want 0x5000 (no page-wrap bug)", c2.PC)
	}
}

// TestStackWordRoundTrip verifies push_word/pop_word are inverses and
// that the high byte lands above the low byte on the stack page.
func TestStackWordRoundTrip(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	startSP := c.SP
	c.pushWord(0xBEEF)
	if got := r.addr[0x0100|uint16(startSP)]; got != 0xBE {
		t.Errorf("high byte at 0x01%.2X = 0x%.2X, want 0xBE", startSP, got)
	}
	if got := c.popWord(); got != 0xBEEF {
		t.Errorf("popWord = 0x%.4X, want 0xBEEF", got)
	}
	if c.SP != startSP {
		t.Errorf("SP = 0x%.2X, want 0x%.2X", c.SP, startSP)
	}
}

type fakeSender struct{ raised bool }

func (f *fakeSender) Raised() bool { return f.raised }

// TestIrqSourceWiring verifies a registered Sender can assert an
// interrupt without the host touching IRQStatus directly.
func TestIrqSourceWiring(t *testing.T) {
	r := &flatMemory{}
	c := newTestChip(t, r, 0xC000)
	r.addr[IRQ_VECTOR] = 0x00
	r.addr[IRQ_VECTOR+1] = 0xD0

	src := &fakeSender{raised: true}
	c.AddIRQSource(src)
	c.InterruptHandler()
	if c.PC != 0xD000 {
		t.Errorf("PC = 0x%.4X after Sender-raised IRQ, want 0xD000", c.PC)
	}
}
