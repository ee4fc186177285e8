// Package loader loads raw and C64 PRG-format binaries into a
// memory.Bank, and can lay down the small scaffold of reset/IRQ/NMI
// vectors and C64 zero-page presets conformance test ROMs expect to
// find even though no real C64 hardware is behind them.
package loader

import (
	"fmt"

	"github.com/sixfiveten/emu6510/memory"
)

// LoadRaw copies data into bank starting at addr. Bytes that would
// fall past the end of the 64KiB address space are silently dropped,
// matching how convertprg truncates an oversized image rather than
// erroring.
func LoadRaw(bank memory.Bank, addr uint16, data []byte) {
	for i, b := range data {
		a := int(addr) + i
		if a > 0xFFFF {
			return
		}
		bank.Write(uint16(a), b)
	}
}

// LoadPRG loads a C64 .prg image: the first two bytes are the
// little-endian load address, the rest is the payload. It returns the
// load address so the caller can set PC or continue disassembling
// from it.
func LoadPRG(bank memory.Bank, data []byte) (uint16, error) {
	if len(data) < 2 {
		return 0, fmt.Errorf("prg image too short: %d bytes", len(data))
	}
	addr := uint16(data[0]) | uint16(data[1])<<8
	LoadRaw(bank, addr, data[2:])
	return addr, nil
}

// harnessEntry and harnessExit mark where the scaffold below parks the
// CPU: a JSR to startPC followed by an infinite JMP to itself, so a
// test ROM that falls through its own code lands somewhere stable and
// detectable rather than executing whatever garbage follows it in RAM.
const (
	harnessEntry = uint16(0xD000)
	harnessExit  = uint16(0xC000)
)

// InstallTestHarness pokes the reset/IRQ/NMI vectors and the handful
// of zero-page and low-RAM locations (from http://sta.c64.org/cbm64mem.html)
// that C64-targeted test ROMs read on startup, then arranges for
// execution to JSR into startPC. This is the in-memory equivalent of
// the 64KiB image convertprg builds on disk, used when a harness wants
// to run a loaded PRG directly against a Chip instead of round
// tripping through a file.
func InstallTestHarness(bank memory.Bank, startPC uint16) {
	bank.Write(harnessExit, 0x4C) // JMP harnessExit
	bank.Write(harnessExit+1, uint8(harnessExit&0xFF))
	bank.Write(harnessExit+2, uint8(harnessExit>>8))

	bank.Write(harnessEntry, 0x20) // JSR startPC
	bank.Write(harnessEntry+1, uint8(startPC&0xFF))
	bank.Write(harnessEntry+2, uint8(startPC>>8))
	bank.Write(harnessEntry+3, 0x4C) // JMP harnessEntry+3 (spin after return)
	bank.Write(harnessEntry+4, uint8((harnessEntry+3)&0xFF))
	bank.Write(harnessEntry+5, uint8((harnessEntry+3)>>8))

	bank.Write(0xFFD2, 0x60) // RTS, for ROMs that CHROUT through KERNAL

	bank.Write(0xFFFA, uint8(harnessExit&0xFF))
	bank.Write(0xFFFB, uint8(harnessExit>>8))
	bank.Write(0xFFFC, uint8(harnessEntry&0xFF))
	bank.Write(0xFFFD, uint8(harnessEntry>>8))
	bank.Write(0xFFFE, uint8(harnessExit&0xFF))
	bank.Write(0xFFFF, uint8(harnessExit>>8))

	presets := map[uint16]uint8{
		0x0000: 0x2F, 0x0001: 0x37, // 6510 I/O port DDR/data
		0x0003: 0xAA, 0x0004: 0xB1, 0x0005: 0x91, 0x0006: 0xB3,
		0x0016: 0x19,
		0x002B: 0x01, 0x002C: 0x08, // pointer to start of BASIC area
		0x0038: 0xA0, // pointer to end of BASIC area
		0x0053: 0x03, 0x0054: 0x4C,
		0x0091: 0xFF,
		0x009A: 0x03,
		0x00B2: 0x3C, 0x00B3: 0x03,
		0x00C8: 0x27,
		0x00D5: 0x27,

		// Low-RAM presets past zero page: screen/BASIC pointers and the
		// KERNAL indirect-vector table at $0300-$0333, which C64-assuming
		// programs chain through even with no KERNAL behind them.
		0x0282: 0x08, 0x0284: 0xA0, 0x0288: 0x04,
		0x0300: 0x8B, 0x0301: 0xE3, 0x0302: 0x83, 0x0303: 0xA4,
		0x0304: 0x7C, 0x0305: 0xA5, 0x0306: 0x1A, 0x0307: 0xA7,
		0x0308: 0xE4, 0x0309: 0xA7, 0x030A: 0x86, 0x030B: 0xAE,
		0x0310: 0x4C,
		0x0314: 0x31, 0x0315: 0xEA, 0x0316: 0x66, 0x0317: 0xFE,
		0x0318: 0x47, 0x0319: 0xFE, 0x031A: 0x4A, 0x031B: 0xF3,
		0x031C: 0x91, 0x031D: 0xF2, 0x031E: 0x0E, 0x031F: 0xF2,
		0x0320: 0x50, 0x0321: 0xF2, 0x0322: 0x33, 0x0323: 0xF3,
		0x0324: 0x57, 0x0325: 0xF1, 0x0326: 0xCA, 0x0327: 0xF1,
		0x0328: 0xED, 0x0329: 0xF6, 0x032A: 0x3E, 0x032B: 0xF1,
		0x032C: 0x2F, 0x032D: 0xF3, 0x032E: 0x66, 0x032F: 0xFE,
		0x0330: 0xA5, 0x0331: 0xF4, 0x0332: 0xED, 0x0333: 0xF5,
	}
	for addr, val := range presets {
		bank.Write(addr, val)
	}
}
