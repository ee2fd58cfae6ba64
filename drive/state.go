package drive

import (
	"github.com/gofloppy/fdcfw/cycle"
	"github.com/gofloppy/fdcfw/flux"
	"github.com/gofloppy/fdcfw/pin"
)

// Drive is the single owned record holding the drive's mutable state:
// motor_on, current_track, current_side (spec.md §3, folding the
// original's process-wide globals into one explicit value per spec.md
// §9's "process-wide state" redesign note).
type Drive struct {
	Pins        pin.Set
	Clock       cycle.Clock
	CyclesPerUs uint32

	// Source and Sink are the flux read/write endpoints. Board wiring
	// sets these to flux.HotSource/flux.HotSink on real hardware; tests
	// set them to flux.SliceSource/flux.SliceSink.
	Source flux.Source
	Sink   flux.Sink

	Cylinders       int
	SectorsPerTrack int

	motorOn      bool
	currentTrack int // -1 = unknown, valid only after a successful calibration
	currentSide  int

	dirKnown bool
	dirIn    bool
}

// New returns a Drive with its track state marked unknown, matching the
// invariant that current_track is valid only after calibration.
func New(pins pin.Set, clk cycle.Clock, cyclesPerUs uint32, cylinders, sectorsPerTrack int) *Drive {
	return &Drive{
		Pins:            pins,
		Clock:           clk,
		CyclesPerUs:     cyclesPerUs,
		Cylinders:       cylinders,
		SectorsPerTrack: sectorsPerTrack,
		currentTrack:    -1,
	}
}

// MotorOn reports whether the spindle motor is currently enabled.
func (d *Drive) MotorOn() bool {
	return d.motorOn
}

// CurrentTrack reports the last known cylinder and whether it is valid.
func (d *Drive) CurrentTrack() (track int, known bool) {
	if d.currentTrack < 0 {
		return 0, false
	}
	return d.currentTrack, true
}

// CurrentSide reports the last selected head.
func (d *Drive) CurrentSide() int {
	return d.currentSide
}
