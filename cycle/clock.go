// Package cycle implements the Timing capability described in spec.md §9:
// wait_n_cycles(n), emit_pulse(width), time_next_edge(). It is the one
// piece of the system that cannot be written in portable high-level Go and
// is instead pinned to a concrete cycle budget per build target.
//
// Rather than reading a hardware cycle-counter register on every loop
// iteration (too slow: a peripheral-bus register read costs far more than
// the handful of cycles it is trying to measure), the loop spins a small
// fixed-instruction-count body and tracks elapsed time by multiplying the
// iteration count by a known, calibrated per-iteration cost. This mirrors
// the technique of the original firmware (accumulate a software pulse
// counter by a constant per loop pass rather than sampling a timer),
// generalized behind an interface so the codec above it never depends on a
// concrete clock or a specific board's register layout.
//
// This package is consumed by flux's tamago-only hot path
// (flux.HotSource / flux.HotSink) and by the drive sequencer's cold-path
// delays (WaitDuration); mfm and sector are tested purely in terms of
// flux.Symbol values and never see a Clock.
package cycle

// Clock is the Timing capability used by the flux timer and pulse emitter.
// An implementation must guarantee that one loop iteration always costs the
// same, known number of cycles — a portable Go loop cannot promise this
// (the compiler, GC, and scheduler all introduce jitter), which is why the
// tamago implementation pins its iteration body to a hand-written assembly
// fragment (see clock_tamago_arm.s) rather than a Go for loop.
type Clock interface {
	// CyclesPerIteration returns the calibrated, known cost in CPU
	// cycles of a single iteration of the loops below — typically 4-6
	// cycles on a few-hundred-MHz core (spec.md §4.1). It must be
	// verified on the target chip.
	CyclesPerIteration() uint32

	// WaitCycles busy-waits for approximately n cycles, rounding down to
	// a whole number of loop iterations.
	WaitCycles(n uint32)

	// TimeEdge busy-waits on the input bit at (readAddr, readPos) for one
	// complete flux pulse (the active phase followed by the idle phase,
	// or vice-versa — TimeEdge measures a full period regardless of
	// which phase is "active"), while also polling (indexAddr, indexPos)
	// for the once-per-revolution INDEX pulse. It returns the
	// accumulated cycle estimate for the pulse and whether INDEX fired
	// before the pulse completed.
	//
	// TimeEdge has no timeout of its own beyond the INDEX check: per
	// spec.md §4.1, the flux timer itself never times out, the caller
	// bounds it by revolution count.
	TimeEdge(readAddr uint32, readPos int, indexAddr uint32, indexPos int) (cycles uint32, indexFired bool)

	// EmitPulse drives the output bit at (writeAddr, writePos) low for
	// approximately lowCycles, returns it high, and busy-waits the
	// remainder of totalCycles. Total elapsed time from one EmitPulse
	// call to the next must equal the caller's requested symbol period
	// within one cycle (spec.md §4.2).
	EmitPulse(writeAddr uint32, writePos int, totalCycles uint32, lowCycles uint32)
}
