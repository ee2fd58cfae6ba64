package drive

import "time"

// stepPulse is the width of one STEP pulse (spec.md §4.8).
const stepPulse = 11 * time.Microsecond

// dirSetup is the minimum time the DIR line must be held steady before
// the first step of a new direction: drive mechanics latch DIR on the
// rising edge of STEP, so a direction reversal needs this settle time.
const dirSetup = 20 * time.Millisecond

const (
	calibrateOutSteps = 100
	calibrateInSteps  = 20
)

// Calibrate seeks to track 0 by stepping outward up to 100 times,
// sampling TRACK00 between steps, then reversing for up to 20 steps if
// track 0 was not found outward (spec.md §4.8). On success current_track
// is set to 0.
func (d *Drive) Calibrate() error {
	if d.track00Asserted() {
		d.currentTrack = 0
		return nil
	}

	for i := 0; i < calibrateOutSteps; i++ {
		d.step(false)
		if d.track00Asserted() {
			d.currentTrack = 0
			return nil
		}
	}

	for i := 0; i < calibrateInSteps; i++ {
		d.step(true)
		if d.track00Asserted() {
			d.currentTrack = 0
			return nil
		}
	}

	return ErrTrack0NotFound
}

func (d *Drive) track00Asserted() bool {
	return !d.Pins.Track00.Value()
}

// Seek moves the head to cylinder, calibrating to track 0 first if the
// current track is unknown.
func (d *Drive) Seek(cylinder int) error {
	if _, known := d.CurrentTrack(); !known {
		if err := d.Calibrate(); err != nil {
			return err
		}
	}

	for d.currentTrack != cylinder {
		if cylinder > d.currentTrack {
			d.step(true)
			d.currentTrack++
		} else {
			d.step(false)
			d.currentTrack--
		}
	}

	return nil
}

// SelectSide sets HEAD_SEL for the requested head: high for side 0, low
// for side 1 (Shugart convention, spec.md §4.6).
func (d *Drive) SelectSide(head int) {
	if head == 0 {
		d.Pins.HeadSel.High()
	} else {
		d.Pins.HeadSel.Low()
	}
	d.currentSide = head
}

// step pulses STEP low for stepPulse, re-asserting DIR first (with the
// dirSetup settle time) whenever the direction changes.
func (d *Drive) step(in bool) {
	if !d.dirKnown || d.dirIn != in {
		if in {
			d.Pins.Dir.Low()
		} else {
			d.Pins.Dir.High()
		}
		d.wait(dirSetup)
		d.dirIn = in
		d.dirKnown = true
	}

	d.Pins.Step.Low()
	d.wait(stepPulse)
	d.Pins.Step.High()
	d.wait(stepPulse)
}
