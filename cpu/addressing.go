package cpu

// addrMode is one of the thirteen 6502 addressing-mode tags.
type addrMode int

const (
	IMPLIED addrMode = iota
	ACCUMULATOR
	RELATIVE
	IMMEDIATE
	ZEROPAGE
	ZEROPAGE_X
	ZEROPAGE_Y
	ABSOLUTE
	ABSOLUTE_X
	ABSOLUTE_Y
	INDIRECT
	INDIRECT_X
	INDIRECT_Y
)

// pageCrossed reports whether two addresses fall in different 256-byte
// pages.
func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolve runs the addressing-mode resolver for mode, setting AddrPtr
// or AddrRel (and PageCrossed, where applicable) on the chip. RELATIVE
// defers its page-cross check to performBranch, since that depends on
// whether the branch is actually taken.
func (c *Chip) resolve(mode addrMode) {
	switch mode {
	case IMPLIED, ACCUMULATOR:
		// No operand bytes, nothing to resolve.

	case IMMEDIATE:
		c.AddrPtr = c.PC
		c.PC++

	case ABSOLUTE:
		c.AddrPtr = c.FetchWord()

	case ABSOLUTE_X:
		base := c.FetchWord()
		c.AddrPtr = base + uint16(c.X)
		c.PageCrossed = pageCrossed(base, c.AddrPtr)

	case ABSOLUTE_Y:
		base := c.FetchWord()
		c.AddrPtr = base + uint16(c.Y)
		c.PageCrossed = pageCrossed(base, c.AddrPtr)

	case ZEROPAGE:
		c.AddrPtr = uint16(c.FetchByte())

	case ZEROPAGE_X:
		c.AddrPtr = uint16(c.FetchByte() + c.X)

	case ZEROPAGE_Y:
		c.AddrPtr = uint16(c.FetchByte() + c.Y)

	case RELATIVE:
		c.AddrRel = int8(c.FetchByte())

	case INDIRECT:
		ptr := c.FetchWord()
		hiAddr := ptr + 1
		if c.cpuType != CPU_CMOS {
			// Faithfully replicates the NMOS JMP ($xxFF) page-wrap bug:
			// the high byte is fetched from $xx00, not $(xx+1)00. 65C02
			// fixed this so CMOS carries normally.
			hiAddr = (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		}
		c.AddrPtr = uint16(c.ReadByte(ptr)) | uint16(c.ReadByte(hiAddr))<<8

	case INDIRECT_X:
		zp := uint16(c.FetchByte() + c.X)
		lo := c.ReadByte(zp)
		hi := c.ReadByte(uint16(uint8(zp) + 1))
		c.AddrPtr = uint16(lo) | uint16(hi)<<8

	case INDIRECT_Y:
		zp := uint16(c.FetchByte())
		lo := c.ReadByte(zp)
		hi := c.ReadByte(uint16(uint8(zp) + 1))
		base := uint16(lo) | uint16(hi)<<8
		c.AddrPtr = base + uint16(c.Y)
		c.PageCrossed = pageCrossed(base, c.AddrPtr)
	}
}
