package mfm

import "github.com/gofloppy/fdcfw/flux"

// Encode deterministically transforms data into a symbol stream such that
// DecodeBytes, given the same stream, reproduces it (spec.md §4.5). The
// standard MFM clock-bit rule applies: a clock bit is inserted between two
// consecutive data '0' bits, and only then. Lookahead across the byte
// boundary is realized by carrying the previous data bit forward as the
// loop walks every bit of every byte in order, rather than by buffering a
// single extra byte — the two are equivalent since the clock bit of byte
// i+1's first bit only ever depends on byte i's last data bit, which the
// carried state already holds.
//
// The stream is encoded as if it follows a data '1' bit carrying a flux
// transition (the last bit of a sync mark), so the first symbol is
// measured from that transition and the first clock bit is 0. After the
// last byte, the clock bit ahead of a following 0x00 byte is encoded too,
// so a buffer whose last data bit is 0 ends on a transition.
//
// Encode does not insert sync marks — those deliberately violate the MFM
// clock rule and are produced as a fixed flux.Pattern (mfm.SyncPattern)
// rather than by this function.
func Encode(data []byte) flux.Pattern {
	out := make(flux.Pattern, 0, len(data)*2)

	prevData := byte(1)
	zeros := 0
	haveOne := true

	closeGap := func() {
		if !haveOne {
			return
		}
		switch zeros {
		case 1:
			out = append(out, flux.Short)
		case 2:
			out = append(out, flux.Medium)
		case 3:
			out = append(out, flux.Long)
		default:
			out = append(out, flux.Medium)
		}
	}

	observe := func(bit byte) {
		if bit == 1 {
			closeGap()
			haveOne = true
			zeros = 0
		} else {
			zeros++
		}
	}

	for _, b := range data {
		for i := 7; i >= 0; i-- {
			d := (b >> uint(i)) & 1
			clock := byte(0)
			if prevData == 0 && d == 0 {
				clock = 1
			}
			observe(clock)
			observe(d)
			prevData = d
		}
	}

	// Clock bit ahead of the first data bit of a following 0x00 byte.
	if prevData == 0 {
		observe(1)
	}

	return out
}
