package cpu

// PackFlags encodes the seven processor flags into the 8-bit status
// byte. Bit 5 is always forced to 1; B reflects whatever live value
// the caller set (push sites clear or set B themselves beforehand).
func (c *Chip) PackFlags() uint8 {
	var p uint8
	if c.N {
		p |= P_NEGATIVE
	}
	if c.V {
		p |= P_OVERFLOW
	}
	p |= P_S1
	if c.B {
		p |= P_B
	}
	if c.D {
		p |= P_DECIMAL
	}
	if c.I {
		p |= P_INTERRUPT
	}
	if c.Z {
		p |= P_ZERO
	}
	if c.C {
		p |= P_CARRY
	}
	return p
}

// UnpackFlags restores the seven processor flags from a status byte.
// Bit 5 is ignored.
func (c *Chip) UnpackFlags(p uint8) {
	c.N = p&P_NEGATIVE != 0
	c.V = p&P_OVERFLOW != 0
	c.B = p&P_B != 0
	c.D = p&P_DECIMAL != 0
	c.I = p&P_INTERRUPT != 0
	c.Z = p&P_ZERO != 0
	c.C = p&P_CARRY != 0
}
