// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package flux

import "github.com/gofloppy/fdcfw/cycle"

// HotSource is the real-hardware Source: it reads the READ_DATA line
// directly through a cycle.Clock, bypassing pin.Pin entirely, because the
// flux timer's measurement loop cannot tolerate an interface-method or
// MMIO-wrapper indirection per symbol (spec.md §9, "pin-read fast path").
type HotSource struct {
	Clock cycle.Clock

	ReadAddr, IndexAddr uint32
	ReadPos, IndexPos   int

	// CyclesPerUs is the core's cycle rate in MHz (cycles per
	// microsecond), used to classify each measured interval.
	CyclesPerUs uint32
}

func (h *HotSource) Next() (Symbol, bool) {
	cycles, indexFired := h.Clock.TimeEdge(h.ReadAddr, h.ReadPos, h.IndexAddr, h.IndexPos)
	if indexFired {
		return 0, false
	}
	return Classify(cycles, h.CyclesPerUs), true
}
