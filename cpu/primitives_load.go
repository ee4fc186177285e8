package cpu

// Load/store/transfer family. Loads read from AddrPtr and set Z/N;
// stores write the named register to AddrPtr; transfers copy between
// registers (TXS is the one exception that never touches Z/N).

func (c *Chip) iLDA() {
	c.A = c.ReadByte(c.AddrPtr)
	c.setZN(c.A)
}

func (c *Chip) iLDX() {
	c.X = c.ReadByte(c.AddrPtr)
	c.setZN(c.X)
}

func (c *Chip) iLDY() {
	c.Y = c.ReadByte(c.AddrPtr)
	c.setZN(c.Y)
}

func (c *Chip) iSTA() {
	c.WriteByte(c.AddrPtr, c.A)
}

func (c *Chip) iSTX() {
	c.WriteByte(c.AddrPtr, c.X)
}

func (c *Chip) iSTY() {
	c.WriteByte(c.AddrPtr, c.Y)
}

func (c *Chip) iTAX() {
	c.X = c.A
	c.setZN(c.X)
}

func (c *Chip) iTAY() {
	c.Y = c.A
	c.setZN(c.Y)
}

func (c *Chip) iTXA() {
	c.A = c.X
	c.setZN(c.A)
}

func (c *Chip) iTYA() {
	c.A = c.Y
	c.setZN(c.A)
}

func (c *Chip) iTSX() {
	c.X = c.SP
	c.setZN(c.X)
}

// iTXS copies X into SP without touching any flag.
func (c *Chip) iTXS() {
	c.SP = c.X
}
