// Package memory defines the Bank interface the CPU core and every
// address-map overlay in this module speak, plus a flat RAM
// implementation for harnesses that need no overlay at all. Concrete
// maps with shadowing or bank-switching (c64mem) provide their own
// Bank implementations.
package memory

import "fmt"

// Bank is a byte-addressable view of (some slice of) the 16-bit
// address space.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is
	// simply a no-op without any error.
	Write(addr uint16, val uint8)
	// PowerOn resets the memory to its initial contents.
	PowerOn()
	// Parent holds a reference (if non-nil) to the next level memory
	// controller. A chain of these can be created in order to find the
	// top one and query items such as the databus state. Some
	// implementations depend on transient databus state due to side
	// effects.
	Parent() Bank
	// DatabusVal returns the last value seen to go across the data bus.
	DatabusVal() uint8
}

// LatestDatabusVal walks up the Parent chain to the outermost Bank and
// returns its DatabusVal.
func LatestDatabusVal(b Bank) uint8 {
	for b.Parent() != nil {
		b = b.Parent()
	}
	return b.DatabusVal()
}

// RAM is a flat R/W Bank. A RAM smaller than the full 64KiB address
// space aliases on Read/Write; a parent map that wants different
// mirroring must mask addresses before delegating here.
type RAM struct {
	data       []uint8
	parent     Bank
	databusVal uint8
}

// NewRAM creates a RAM bank of the given size, which must be a power
// of 2 no larger than 64KiB.
func NewRAM(size int, parent Bank) (*RAM, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	return &RAM{
		data:   make([]uint8, size),
		parent: parent,
	}, nil
}

// Read implements Bank. The address is masked to the RAM's size.
func (r *RAM) Read(addr uint16) uint8 {
	addr &= uint16(len(r.data) - 1)
	val := r.data[addr]
	r.databusVal = val
	return val
}

// Write implements Bank. The address is masked to the RAM's size.
func (r *RAM) Write(addr uint16, val uint8) {
	addr &= uint16(len(r.data) - 1)
	r.databusVal = val
	r.data[addr] = val
}

// PowerOn zeroes the RAM. Real DRAM comes up in a scrambled state, but
// the conformance ROMs this module exists to run assume they can read
// uninitialized memory and still behave reproducibly, so power-on is
// deterministic here the same way it is in c64mem.
func (r *RAM) PowerOn() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Parent implements Bank.
func (r *RAM) Parent() Bank {
	return r.parent
}

// DatabusVal implements Bank.
func (r *RAM) DatabusVal() uint8 {
	return r.databusVal
}
