package cpu

// Control-flow family: jumps, subroutine call/return, and the
// software-interrupt pair BRK/RTI.

func (c *Chip) iJMP() {
	c.PC = c.AddrPtr
}

// iJSR pushes the address of the last byte of the JSR instruction
// (PC-1, since PC already points past the target address), then jumps.
func (c *Chip) iJSR() {
	c.pushWord(c.PC - 1)
	c.PC = c.AddrPtr
}

func (c *Chip) iRTS() {
	c.PC = c.popWord() + 1
}

func (c *Chip) iRTI() {
	c.UnpackFlags(c.popByte())
	c.PC = c.popWord()
}

// iBRK pushes PC+1 and the status byte (with B set), sets I, and
// transfers control through the IRQ vector. The extra PC increment
// reproduces the NMOS quirk where BRK is treated as a two-byte
// instruction with a padding byte after the opcode.
func (c *Chip) iBRK() {
	c.PC++
	c.pushWord(c.PC)
	c.B = true
	c.pushByte(c.PackFlags())
	c.B = false
	c.I = true
	c.PC = c.ReadWord(IRQ_VECTOR)
}

func (c *Chip) iNOP() {
}
