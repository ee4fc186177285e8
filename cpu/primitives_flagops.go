package cpu

// Direct flag set/clear instructions.

func (c *Chip) iCLC() { c.C = false }
func (c *Chip) iSEC() { c.C = true }
func (c *Chip) iCLD() { c.D = false }
func (c *Chip) iSED() { c.D = true }
func (c *Chip) iCLI() { c.I = false }
func (c *Chip) iSEI() { c.I = true }
func (c *Chip) iCLV() { c.V = false }
