// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package flux

import "github.com/gofloppy/fdcfw/cycle"

// HotSink is the real-hardware Sink: it drives WRITE_DATA directly
// through a cycle.Clock, for the same reason HotSource bypasses pin.Pin
// for reads.
type HotSink struct {
	Clock cycle.Clock

	WriteAddr uint32
	WritePos  int

	// CyclesPerUs is the core's cycle rate in MHz, used to size each
	// pulse's total period and low dwell.
	CyclesPerUs uint32

	// LowUs is the WRITE_DATA low dwell per pulse, nominally 1µs
	// (spec.md §4.2).
	LowUs uint32
}

func (h *HotSink) Emit(sym Symbol) {
	total := Period(sym, h.CyclesPerUs)
	low := h.LowUs * h.CyclesPerUs
	if low > total {
		low = total
	}
	h.Clock.EmitPulse(h.WriteAddr, h.WritePos, total, low)
}
