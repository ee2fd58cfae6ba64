package cycle

import "time"

// maxChunkCycles bounds a single WaitCycles call so that multi-second
// delays (motor spin-up, track-0 calibration, INDEX timeout polling)
// cannot overflow uint32 cycle-count arithmetic on a fast core.
const maxChunkCycles = uint32(1) << 30

// WaitDuration busy-waits for approximately d using c, the same Timing
// capability used for flux symbols, chunked to stay within WaitCycles'
// uint32 range. The drive sequencer's cold-path delays (spec.md §4.8's
// spin-up and step timings) go through this rather than a separate wall-
// clock facility, keeping the Timing capability to the three operations
// spec.md §9 names.
func WaitDuration(c Clock, d time.Duration, cyclesPerUs uint32) {
	if d <= 0 || cyclesPerUs == 0 {
		return
	}

	remainingUs := uint64(d / time.Microsecond)
	maxUs := uint64(maxChunkCycles / cyclesPerUs)
	if maxUs == 0 {
		maxUs = 1
	}

	for remainingUs > 0 {
		chunkUs := remainingUs
		if chunkUs > maxUs {
			chunkUs = maxUs
		}
		c.WaitCycles(uint32(chunkUs) * cyclesPerUs)
		remainingUs -= chunkUs
	}
}
