package cpu

// PHA/PLA/PHP/PLP. PHP always pushes the status byte with the B flag
// and bit 5 both set; PLP restores N/V/D/I/Z/C from the popped byte
// and leaves B as a transient push-time artifact (it is not a stored
// flag on this chip).

func (c *Chip) iPHA() {
	c.pushByte(c.A)
}

func (c *Chip) iPLA() {
	c.A = c.popByte()
	c.setZN(c.A)
}

func (c *Chip) iPHP() {
	c.B = true
	c.pushByte(c.PackFlags())
	c.B = false
}

func (c *Chip) iPLP() {
	b := c.B
	c.UnpackFlags(c.popByte())
	c.B = b
}
