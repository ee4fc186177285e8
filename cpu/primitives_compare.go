package cpu

// Compare family: subtract without storing, setting C/Z/N from the
// result. All three registers share the same underlying arithmetic.

func (c *Chip) compare(reg, m uint8) {
	diff := reg - m
	c.C = reg >= m
	c.setZN(diff)
}

func (c *Chip) iCMP() {
	c.compare(c.A, c.ReadByte(c.AddrPtr))
}

func (c *Chip) iCPX() {
	c.compare(c.X, c.ReadByte(c.AddrPtr))
}

func (c *Chip) iCPY() {
	c.compare(c.Y, c.ReadByte(c.AddrPtr))
}
