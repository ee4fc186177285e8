package cpu

// Shift/rotate family. Each has an accumulator form and a memory form;
// the opcode table dispatches to the right one directly rather than
// branching on addressing mode at runtime.

func (c *Chip) iASLAcc() {
	c.C = c.A&0x80 != 0
	c.A <<= 1
	c.setZN(c.A)
}

func (c *Chip) iASL() {
	v := c.ReadByte(c.AddrPtr)
	c.C = v&0x80 != 0
	v <<= 1
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}

func (c *Chip) iLSRAcc() {
	c.C = c.A&0x01 != 0
	c.A >>= 1
	c.setZN(c.A)
}

func (c *Chip) iLSR() {
	v := c.ReadByte(c.AddrPtr)
	c.C = v&0x01 != 0
	v >>= 1
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}

func (c *Chip) iROLAcc() {
	carryIn := c.carry8()
	c.C = c.A&0x80 != 0
	c.A = (c.A << 1) | carryIn
	c.setZN(c.A)
}

func (c *Chip) iROL() {
	v := c.ReadByte(c.AddrPtr)
	carryIn := c.carry8()
	c.C = v&0x80 != 0
	v = (v << 1) | carryIn
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}

func (c *Chip) iRORAcc() {
	carryIn := c.carry8()
	c.C = c.A&0x01 != 0
	c.A = (c.A >> 1) | (carryIn << 7)
	c.setZN(c.A)
}

func (c *Chip) iROR() {
	v := c.ReadByte(c.AddrPtr)
	carryIn := c.carry8()
	c.C = v&0x01 != 0
	v = (v >> 1) | (carryIn << 7)
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}
