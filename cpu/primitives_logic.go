package cpu

// Logical family: AND/ORA/EOR combine A with the operand and set Z/N;
// BIT tests without modifying A.

func (c *Chip) iAND() {
	c.A &= c.ReadByte(c.AddrPtr)
	c.setZN(c.A)
}

func (c *Chip) iORA() {
	c.A |= c.ReadByte(c.AddrPtr)
	c.setZN(c.A)
}

func (c *Chip) iEOR() {
	c.A ^= c.ReadByte(c.AddrPtr)
	c.setZN(c.A)
}

func (c *Chip) iBIT() {
	m := c.ReadByte(c.AddrPtr)
	c.Z = (c.A & m) == 0
	c.N = m&0x80 != 0
	c.V = m&0x40 != 0
}
