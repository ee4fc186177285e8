package memory

import "testing"

func TestNewRAMSizeValidation(t *testing.T) {
	for _, size := range []int{0, -1, 3, 1000, 1<<16 + 1, 1 << 17} {
		if _, err := NewRAM(size, nil); err == nil {
			t.Errorf("NewRAM(%d) accepted, want error", size)
		}
	}
	for _, size := range []int{1, 256, 1 << 16} {
		if _, err := NewRAM(size, nil); err != nil {
			t.Errorf("NewRAM(%d): %v", size, err)
		}
	}
}

func TestRAMAliasing(t *testing.T) {
	r, err := NewRAM(256, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Write(0x1234, 0x56)
	if got := r.Read(0x0034); got != 0x56 {
		t.Errorf("Read(0x0034) = 0x%.2X, want 0x56 (aliased from 0x1234)", got)
	}
}

func TestPowerOnDeterministic(t *testing.T) {
	r, err := NewRAM(1<<16, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	r.Write(0x4000, 0xFF)
	r.PowerOn()
	if got := r.Read(0x4000); got != 0x00 {
		t.Errorf("Read(0x4000) = 0x%.2X after PowerOn, want 0x00", got)
	}
}

func TestLatestDatabusVal(t *testing.T) {
	parent, err := NewRAM(256, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	child, err := NewRAM(256, parent)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	parent.Write(0x10, 0x77)
	child.Write(0x10, 0x11)
	if got := LatestDatabusVal(child); got != 0x77 {
		t.Errorf("LatestDatabusVal = 0x%.2X, want 0x77 (from outermost bank)", got)
	}
}
