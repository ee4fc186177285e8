package cpu

// Branch family. Each instruction tests a flag and defers to
// performBranch, which accounts for the extra cycle taken branches
// cost, plus a further cycle if the branch crosses a page boundary.

func (c *Chip) performBranch(taken bool) {
	if !taken {
		return
	}
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(c.AddrRel))
	c.Cycles++
	if pageCrossed(old, c.PC) {
		c.Cycles++
	}
}

func (c *Chip) iBCC() { c.performBranch(!c.C) }
func (c *Chip) iBCS() { c.performBranch(c.C) }
func (c *Chip) iBEQ() { c.performBranch(c.Z) }
func (c *Chip) iBNE() { c.performBranch(!c.Z) }
func (c *Chip) iBMI() { c.performBranch(c.N) }
func (c *Chip) iBPL() { c.performBranch(!c.N) }
func (c *Chip) iBVC() { c.performBranch(!c.V) }
func (c *Chip) iBVS() { c.performBranch(c.V) }
