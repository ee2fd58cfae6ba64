package bits

import "testing"

func TestGet16(t *testing.T) {
	v := uint16(0b1011_0100)
	if got := Get16(v, 2, 0x1F); got != 0b01101 {
		t.Fatalf("Get16 = %05b, want %05b", got, 0b01101)
	}
}

func TestSetClear(t *testing.T) {
	var v uint32
	Set(&v, 3)
	if v != 1<<3 {
		t.Fatalf("Set: v = %#x, want %#x", v, uint32(1<<3))
	}
	Set(&v, 5)
	Clear(&v, 3)
	if v != 1<<5 {
		t.Fatalf("Clear: v = %#x, want %#x", v, uint32(1<<5))
	}
}

func TestSetN(t *testing.T) {
	var v uint32 = 0xFF
	SetN(&v, 4, 0xF, 0xA)
	if v != 0xAF {
		t.Fatalf("SetN: v = %#x, want %#x", v, uint32(0xAF))
	}
}
