package cpu

// Increment/decrement family, memory and register forms.

func (c *Chip) iINC() {
	v := c.ReadByte(c.AddrPtr) + 1
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}

func (c *Chip) iDEC() {
	v := c.ReadByte(c.AddrPtr) - 1
	c.WriteByte(c.AddrPtr, v)
	c.setZN(v)
}

func (c *Chip) iINX() {
	c.X++
	c.setZN(c.X)
}

func (c *Chip) iINY() {
	c.Y++
	c.setZN(c.Y)
}

func (c *Chip) iDEX() {
	c.X--
	c.setZN(c.X)
}

func (c *Chip) iDEY() {
	c.Y--
	c.setZN(c.Y)
}
