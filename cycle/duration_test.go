package cycle

import (
	"testing"
	"time"
)

type countingClock struct {
	calls []uint32
}

func (c *countingClock) CyclesPerIteration() uint32 { return 6 }
func (c *countingClock) WaitCycles(n uint32)         { c.calls = append(c.calls, n) }
func (c *countingClock) TimeEdge(uint32, int, uint32, int) (uint32, bool) {
	return 0, false
}
func (c *countingClock) EmitPulse(uint32, int, uint32, uint32) {}

func TestWaitDurationChunks(t *testing.T) {
	c := &countingClock{}
	WaitDuration(c, 3*time.Second, 600)

	var total uint64
	for _, n := range c.calls {
		if n > maxChunkCycles {
			t.Fatalf("WaitCycles called with %d cycles, exceeds maxChunkCycles %d", n, maxChunkCycles)
		}
		total += uint64(n)
	}
	want := uint64(3*time.Second/time.Microsecond) * 600
	if total != want {
		t.Fatalf("total cycles = %d, want %d", total, want)
	}
}

func TestWaitDurationZero(t *testing.T) {
	c := &countingClock{}
	WaitDuration(c, 0, 600)
	if len(c.calls) != 0 {
		t.Fatalf("WaitDuration(0): WaitCycles called %d times, want 0", len(c.calls))
	}
}

var _ Clock = (*countingClock)(nil)
