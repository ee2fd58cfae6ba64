// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package cycle

// busyLoop, timeEdgeLoop and emitPulseLoop are defined in
// clock_tamago_arm.s. Each pins its per-iteration cost to a fixed,
// hand-counted instruction sequence — a plain load/test/branch with no
// call overhead — so that CyclesPerIteration is an accurate constant
// rather than an estimate. None of them take a Go function value: the
// register addresses are passed down as plain uint32s and dereferenced
// directly by the assembly, the same way the loop in the original firmware
// reads a fixed I/O port rather than calling through a trait object.
func busyLoop(iterations uint32)
func timeEdgeLoop(readAddr uint32, readPos uint32, indexAddr uint32, indexPos uint32) (iterations uint32, indexFired uint32)
func emitPulseLoop(writeAddr uint32, writePos uint32, totalIters uint32, lowIters uint32)

// TamagoClock is the Clock implementation used on real hardware: direct
// MMIO polling pinned to a fixed cycles-per-iteration constant for the
// target core. The constant must be calibrated per board revision (core
// frequency, cache state, wait states) and is never derived at runtime.
type TamagoClock struct {
	// CyclesPerIter is the measured cost, in CPU cycles, of one iteration
	// of the assembly loops on the target core. A typical few-hundred-MHz
	// Cortex-A core lands in the 4-6 cycle range quoted by spec.md §4.1.
	CyclesPerIter uint32
}

func (c *TamagoClock) CyclesPerIteration() uint32 {
	return c.CyclesPerIter
}

func (c *TamagoClock) WaitCycles(n uint32) {
	if c.CyclesPerIter == 0 {
		return
	}
	busyLoop(n / c.CyclesPerIter)
}

func (c *TamagoClock) TimeEdge(readAddr uint32, readPos int, indexAddr uint32, indexPos int) (uint32, bool) {
	iterations, fired := timeEdgeLoop(readAddr, uint32(readPos), indexAddr, uint32(indexPos))
	return iterations * c.CyclesPerIter, fired != 0
}

func (c *TamagoClock) EmitPulse(writeAddr uint32, writePos int, totalCycles uint32, lowCycles uint32) {
	if c.CyclesPerIter == 0 {
		return
	}
	emitPulseLoop(writeAddr, uint32(writePos), totalCycles/c.CyclesPerIter, lowCycles/c.CyclesPerIter)
}
