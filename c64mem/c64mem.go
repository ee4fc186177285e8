// Package c64mem implements the Commodore 64's bank-switched address
// decoding: 64KiB of RAM overlaid by the BASIC and KERNAL ROMs, the
// I/O page, and the character ROM, selected by the LORAM/HIRAM/CHAREN
// bits of the 6510's on-chip I/O port at $0000/$0001. With no io Bank
// installed, the I/O page (VIC-II, SID, CIA, color RAM) reads and
// writes the underlying RAM like any other region; this core models
// the banking, not the devices behind it.
package c64mem

import (
	"github.com/sixfiveten/emu6510/memory"
)

const (
	ioPortDDR  = uint16(0x0000)
	ioPortData = uint16(0x0001)

	basicBase  = uint16(0xA000)
	basicTop   = uint16(0xBFFF)
	ioBase     = uint16(0xD000)
	ioTop      = uint16(0xDFFF)
	charBase   = uint16(0xD000)
	kernalBase = uint16(0xE000)
	kernalTop  = uint16(0xFFFF)

	// Bits of the 6510 I/O port (data direction is fixed by the KERNAL
	// at boot; this core assumes the usual $2F/$37 DDR/data pair).
	portLORAM  = uint8(0x01)
	portHIRAM  = uint8(0x02)
	portCHAREN = uint8(0x04)
)

// Bank implements memory.Bank over the C64 address map. It satisfies
// memory.Bank itself so it can be handed straight to cpu.New, and
// chains to an optional parent the way every other Bank in this
// module family does.
type Bank struct {
	ram        [1 << 16]uint8
	basicROM   []uint8     // 8KiB, may be nil
	kernalROM  []uint8     // 8KiB, may be nil
	charROM    []uint8     // 4KiB, may be nil
	io         memory.Bank // handles $D000-$DFFF when CHAREN forces I/O in; may be nil
	parent     memory.Bank
	databusVal uint8
}

// New returns a powered-off C64 memory map. Any of basicROM, kernalROM
// or charROM may be nil (and io may be nil), in which case that
// region reads as whatever is sitting in the underlying RAM.
func New(basicROM, kernalROM, charROM []uint8, io memory.Bank, parent memory.Bank) *Bank {
	return &Bank{
		basicROM:  basicROM,
		kernalROM: kernalROM,
		charROM:   charROM,
		io:        io,
		parent:    parent,
	}
}

func (b *Bank) port() uint8 {
	return b.ram[ioPortData]
}

// Read implements memory.Bank, resolving ROM/IO overlays per the
// current $01 port bits before falling through to plain RAM. The
// $D000-$DFFF window only leaves RAM when LORAM or HIRAM is set:
// with both clear the PLA maps RAM there no matter what CHAREN says.
func (b *Bank) Read(addr uint16) uint8 {
	p := b.port()
	ramConfig := p&(portLORAM|portHIRAM) == 0
	var v uint8
	switch {
	case addr >= basicBase && addr <= basicTop && p&portLORAM != 0 && p&portHIRAM != 0 && b.basicROM != nil:
		v = b.basicROM[addr-basicBase]
	case addr >= kernalBase && addr <= kernalTop && p&portHIRAM != 0 && b.kernalROM != nil:
		v = b.kernalROM[addr-kernalBase]
	case addr >= ioBase && addr <= ioTop && !ramConfig && p&portCHAREN != 0 && b.io != nil:
		v = b.io.Read(addr)
	case addr >= charBase && addr <= ioTop && !ramConfig && p&portCHAREN == 0 && b.charROM != nil:
		v = b.charROM[addr-charBase]
	default:
		v = b.ram[addr]
	}
	b.databusVal = v
	return v
}

// Write implements memory.Bank. Writes always land in the underlying
// RAM even when a ROM is banked in over the same range (the RAM is
// still there electrically; only reads are diverted), except for the
// I/O page, which a banked-in device owns exclusively.
func (b *Bank) Write(addr uint16, val uint8) {
	p := b.port()
	if addr >= ioBase && addr <= ioTop && p&(portLORAM|portHIRAM) != 0 && p&portCHAREN != 0 && b.io != nil {
		b.io.Write(addr, val)
		b.databusVal = val
		return
	}
	b.ram[addr] = val
	b.databusVal = val
}

// PowerOn sets the I/O port to the KERNAL's usual post-reset state
// (DDR $2F, data $37: everything banked in, CHAREN set) and zeroes RAM
// deterministically rather than randomizing it.
func (b *Bank) PowerOn() {
	for i := range b.ram {
		b.ram[i] = 0
	}
	b.ram[ioPortDDR] = 0x2F
	b.ram[ioPortData] = 0x37
}

// Parent implements memory.Bank.
func (b *Bank) Parent() memory.Bank {
	return b.parent
}

// DatabusVal implements memory.Bank.
func (b *Bank) DatabusVal() uint8 {
	return b.databusVal
}
