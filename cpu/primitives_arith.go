package cpu

// Binary-mode and BCD-mode ADC/SBC. Decimal-mode math follows the
// standard low-nibble/high-nibble fixup algorithm; Z is always taken
// from the binary sum, matching NMOS behavior (the CMOS 65C02 instead
// derives Z from the decimal result, which this core does not emulate).

func (c *Chip) carry8() uint8 {
	if c.C {
		return 1
	}
	return 0
}

func (c *Chip) iADC() {
	m := c.ReadByte(c.AddrPtr)
	carry := c.carry8()

	if c.D && c.cpuType != CPU_NMOS_RICOH {
		c.adcDecimal(m, carry)
		return
	}

	sum := uint16(c.A) + uint16(m) + uint16(carry)
	c.V = (^(c.A ^ m) & (c.A ^ uint8(sum)) & 0x80) != 0
	c.C = sum > 0xFF
	c.A = uint8(sum)
	c.setZN(c.A)
}

func (c *Chip) adcDecimal(m, carry uint8) {
	origA := c.A
	al := (origA & 0x0F) + (m & 0x0F) + carry
	if al > 9 {
		al += 6
	}
	ah := (origA >> 4) + (m >> 4)
	if al > 15 {
		ah++
	}
	c.V = ((ah<<4)^origA)&^(origA^m)&0x80 != 0
	if ah > 9 {
		ah += 6
	}
	c.N = ah&8 != 0
	c.C = ah > 15
	binVal := origA + m + carry
	c.A = (ah << 4) | (al & 0x0F)
	c.Z = binVal == 0
}

func (c *Chip) iSBC() {
	m := c.ReadByte(c.AddrPtr)
	carry := c.carry8()

	if c.D && c.cpuType != CPU_NMOS_RICOH {
		c.sbcDecimal(m, carry)
		return
	}

	notM := ^m
	sum := uint16(c.A) + uint16(notM) + uint16(carry)
	c.V = (^(c.A ^ notM) & (c.A ^ uint8(sum)) & 0x80) != 0
	c.C = sum > 0xFF
	c.A = uint8(sum)
	c.setZN(c.A)
}

func (c *Chip) sbcDecimal(m, carry uint8) {
	comCarry := uint8(0)
	if carry == 0 {
		comCarry = 1
	}
	decResult := int16(c.A) - int16(m) - int16(comCarry)

	al := int8(c.A&0x0F) - int8(m&0x0F) - int8(comCarry)
	if al < 0 {
		al -= 6
	}
	ah := int8(c.A>>4) - int8(m>>4)
	if al < 0 {
		ah--
	}
	if ah < 0 {
		ah -= 6
	}

	c.V = (uint8(decResult)^c.A)&(c.A^m)&0x80 != 0
	c.C = !(decResult < 0)
	binVal := c.A + ^m + carry
	c.A = (uint8(ah) << 4) | (uint8(al) & 0x0F)
	c.N = ah&8 != 0
	c.Z = binVal == 0
}
