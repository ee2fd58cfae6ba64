// Package drive implements the mechanical/logical sequencer: motor
// control, seek/calibration, and the read_sector/write_sector protocol
// loops built on top of package mfm and package sector (spec.md §4.6-4.8).
package drive

import "errors"

// Error kinds per spec.md §7. All recoverable conditions surface as a
// returned error; there are no panics on the data path.
var (
	ErrNoMedia        = errors.New("drive: no media (INDEX did not pulse after spin-up)")
	ErrTrack0NotFound = errors.New("drive: TRACK00 not found during calibration")
	ErrSectorNotFound = errors.New("drive: sector not found after exhausting retries")
	ErrWriteProtected = errors.New("drive: media is write-protected")
	ErrSyncLostInData = errors.New("drive: data field mark byte was neither 0xFB nor 0xFA")
)
