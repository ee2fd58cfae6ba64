package mfm

import "github.com/gofloppy/fdcfw/flux"

// DecodeBytes converts an aligned flux symbol stream into bytes, filling
// dst and returning the number of bytes actually decoded. It must be
// called immediately after a successful ScanForSync: the bit-clock parity
// is known to be at a defined phase relative to the end of the sync mark
// (spec.md §4.4).
//
// truncated is true if INDEX fired before dst was filled.
func DecodeBytes(src flux.Source, dst []byte) (n int, truncated bool) {
	if len(dst) == 0 {
		return 0, false
	}

	weight := uint16(0x8000)
	parity := Even
	window := uint16(0)

	// Resync alignment quirk: the last symbol of the sync mark already
	// carried one of the data-bit slots, so the first post-sync symbol
	// is interpreted by this special rule instead of the steady-state
	// algorithm below. Replicated verbatim per spec.md §4.4.
	first, ok := src.Next()
	if !ok {
		return 0, true
	}
	switch first {
	case flux.Medium:
		parity = Odd
		weight >>= 1
	case flux.Long:
		weight >>= 1
	case flux.Short:
	}

	for n < len(dst) {
		sym, ok := src.Next()
		if !ok {
			return n, true
		}

		var mask uint16
		if parity == Even {
			mask = 0xFFFF
		}
		window |= weight & mask
		weight >>= 1

		switch sym {
		case flux.Long:
			weight >>= 1
		case flux.Medium:
			if parity == Even {
				weight >>= 1
			}
			parity = parity.Flip()
		case flux.Short:
		}

		if weight <= 0x80 {
			dst[n] = byte(window >> 8)
			window <<= 8
			weight <<= 8
			n++
		}
	}

	return n, false
}
