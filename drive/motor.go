package drive

import (
	"time"

	"github.com/gofloppy/fdcfw/cycle"
)

// spinUpDelay is the minimum wait after asserting MOTOR before the
// spindle is considered up to speed (spec.md §4.8).
const spinUpDelay = 500 * time.Millisecond

// indexTimeout bounds how long SpinUp waits for the first INDEX pulse
// before concluding there is no media.
const indexTimeout = 10 * time.Second

// indexPollInterval is the granularity at which SpinUp samples INDEX
// while waiting. It does not need to be cycle-accurate, unlike the flux
// timer; it only needs to bound a multi-second wall-clock wait.
const indexPollInterval = time.Millisecond

// SpinUp asserts DRIVE_SELECT and MOTOR, waits out the mechanical spin-up
// delay, then waits for the first INDEX pulse. If INDEX never arrives
// within indexTimeout, it is treated as no-media or a drive fault: the
// motor is forced off and ErrNoMedia is returned.
func (d *Drive) SpinUp() error {
	d.Pins.DriveSelect.Low()
	d.Pins.Motor.Low()
	d.motorOn = true

	d.wait(spinUpDelay)

	if !d.waitForIndex(indexTimeout) {
		d.MotorOff()
		return ErrNoMedia
	}

	return nil
}

// MotorOff de-asserts MOTOR and DRIVE_SELECT. The drive sequencer forces
// this on an unrecoverable no-media condition; callers may also call it
// directly once done with the drive.
func (d *Drive) MotorOff() {
	d.Pins.Motor.High()
	d.Pins.DriveSelect.High()
	d.motorOn = false
}

func (d *Drive) waitForIndex(timeout time.Duration) bool {
	var elapsed time.Duration
	for elapsed < timeout {
		if !d.Pins.Index.Value() {
			return true
		}
		d.wait(indexPollInterval)
		elapsed += indexPollInterval
	}
	return false
}

func (d *Drive) wait(dur time.Duration) {
	cycle.WaitDuration(d.Clock, dur, d.CyclesPerUs)
}
