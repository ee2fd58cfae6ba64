package mfm

import "github.com/gofloppy/fdcfw/flux"

// SyncPattern is the flux-level image of the three consecutive 0xA1
// address marks (with their deliberately missing clock bit) that precede
// every address and data field on an IBM System 34 formatted floppy
// (spec.md §3).
var SyncPattern = flux.Pattern{
	flux.Medium, flux.Long, flux.Medium, flux.Long, flux.Medium,
	flux.Short, flux.Long, flux.Medium, flux.Long, flux.Medium,
	flux.Short, flux.Long, flux.Medium, flux.Long, flux.Medium,
}

// gapThreshold is the minimum run of consecutive Short symbols required
// before a sync pattern match is attempted, filtering false positives
// inside random data (spec.md §4.3).
const gapThreshold = 80

// ScanForSync reads symbols from src until either a sync mark is located
// (returns true, with src positioned immediately after the mark so the
// next flux.Source read is the first post-sync symbol) or INDEX fires
// first (returns false).
func ScanForSync(src flux.Source) bool {
	gap := 0

	for {
		sym, ok := src.Next()
		if !ok {
			return false
		}

		// A Short symbol only ever extends the gap, even once the
		// threshold is already met: it must never reset a primed gap
		// back to zero, or a long leading run of Shorts would oscillate
		// out of the primed state right before the pattern arrives.
		if sym == flux.Short {
			if gap < gapThreshold {
				gap++
			}
			continue
		}

		if gap < gapThreshold {
			gap = 0
			continue
		}

		if sym != SyncPattern[0] {
			gap = 0
			continue
		}

		matched := true
		for i := 1; i < len(SyncPattern); i++ {
			next, ok := src.Next()
			if !ok {
				return false
			}
			// Compared by symbol identity, not numeric range: a Short
			// at positions 5 and 10 of the pattern must match exactly,
			// never by falling within some range of values.
			if next != SyncPattern[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
		gap = 0
	}
}
