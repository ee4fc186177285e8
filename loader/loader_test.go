package loader

import (
	"testing"

	"github.com/sixfiveten/emu6510/memory"
)

type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8     { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, v uint8) { r.addr[addr] = v }
func (r *flatMemory) PowerOn()                   {}
func (r *flatMemory) Parent() memory.Bank        { return nil }
func (r *flatMemory) DatabusVal() uint8          { return 0 }

func TestLoadRaw(t *testing.T) {
	r := &flatMemory{}
	LoadRaw(r, 0x4000, []byte{0x01, 0x02, 0x03})
	if r.addr[0x4000] != 0x01 || r.addr[0x4002] != 0x03 {
		t.Errorf("bytes not placed at 0x4000: % X", r.addr[0x4000:0x4003])
	}

	// Data running past the top of the address space is truncated, not
	// wrapped back to 0x0000.
	r2 := &flatMemory{}
	LoadRaw(r2, 0xFFFE, []byte{0xAA, 0xBB, 0xCC, 0xDD})
	if r2.addr[0xFFFE] != 0xAA || r2.addr[0xFFFF] != 0xBB {
		t.Errorf("tail bytes wrong: %.2X %.2X", r2.addr[0xFFFE], r2.addr[0xFFFF])
	}
	if r2.addr[0x0000] != 0x00 {
		t.Errorf("load wrapped into 0x0000: 0x%.2X", r2.addr[0x0000])
	}
}

func TestLoadPRG(t *testing.T) {
	r := &flatMemory{}
	addr, err := LoadPRG(r, []byte{0x01, 0x08, 0x99})
	if err != nil {
		t.Fatalf("LoadPRG: %v", err)
	}
	if addr != 0x0801 {
		t.Errorf("load address = 0x%.4X, want 0x0801", addr)
	}
	if r.addr[0x0801] != 0x99 {
		t.Errorf("payload byte = 0x%.2X, want 0x99", r.addr[0x0801])
	}

	if _, err := LoadPRG(r, []byte{0x01}); err == nil {
		t.Error("LoadPRG accepted a 1-byte image, want error")
	}
}

func TestInstallTestHarness(t *testing.T) {
	r := &flatMemory{}
	InstallTestHarness(r, 0x1234)

	// Entry is JSR startPC followed by a JMP-to-self spin.
	if r.addr[harnessEntry] != 0x20 || r.addr[harnessEntry+1] != 0x34 || r.addr[harnessEntry+2] != 0x12 {
		t.Errorf("entry scaffold wrong: % X", r.addr[harnessEntry:harnessEntry+3])
	}
	if r.addr[harnessExit] != 0x4C {
		t.Errorf("exit not a JMP: 0x%.2X", r.addr[harnessExit])
	}

	// Reset enters the JSR stub; NMI and IRQ/BRK park at the exit spin.
	for v, want := range map[uint16]uint16{0xFFFA: harnessExit, 0xFFFC: harnessEntry, 0xFFFE: harnessExit} {
		got := uint16(r.addr[v]) | uint16(r.addr[v+1])<<8
		if got != want {
			t.Errorf("vector at 0x%.4X = 0x%.4X, want 0x%.4X", v, got, want)
		}
	}

	// I/O port pair and BASIC-start pointer presets.
	if r.addr[0x0000] != 0x2F || r.addr[0x0001] != 0x37 {
		t.Errorf("I/O port presets = %.2X %.2X, want 2F 37", r.addr[0x0000], r.addr[0x0001])
	}
	if r.addr[0x002B] != 0x01 || r.addr[0x002C] != 0x08 {
		t.Errorf("BASIC start pointer = %.2X %.2X, want 01 08", r.addr[0x002B], r.addr[0x002C])
	}
}
