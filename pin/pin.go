// Package pin defines the hardware-agnostic GPIO capability consumed by the
// drive sequencer: one bit each for INDEX, DRIVE_SELECT, MOTOR, DIR, STEP,
// READ_DATA, WRITE_DATA, WRITE_GATE, TRACK00, WRITE_PROTECT, HEAD_SEL and
// the optional READY/DISK_CHANGE line (spec.md §6's pin map). READ_DATA
// and WRITE_DATA are configured through Pin at board init, but the flux
// timer and pulse emitter never go through Pin: they dereference raw MMIO
// addresses obtained from HotLine (see flux.HotSource / flux.HotSink)
// because a Pin method call cannot meet the cycle budget the codec needs.
package pin

// Pin is a single GPIO line, configured once as input or output and then
// driven or sampled repeatedly. This mirrors the cold-path convenience
// wrapper shape used across the pack — Out/In/High/Low/Value — rather than
// inventing a new vocabulary.
type Pin interface {
	// Out configures the pin as an output.
	Out()
	// In configures the pin as an input.
	In()
	// High drives (or, for an input, expects) the pin high.
	High()
	// Low drives (or, for an input, expects) the pin low.
	Low()
	// Value samples the current pin level.
	Value() (high bool)
}

// HotLine is implemented by Pin drivers that can expose the raw MMIO
// address and bit position backing them, for the flux hot path. Cold-path
// pins (motor, step, dir, ...) never need to implement it; only the two
// pins handed to the flux layer (READ_DATA, WRITE_DATA) and the INDEX pin
// (sampled inside the same tight loop to bound revolution waits) do.
type HotLine interface {
	// Raw returns the register address and bit position backing this
	// pin, for use by code that cannot afford a method-call indirection
	// per flux symbol.
	Raw() (addr uint32, pos int)
}

// Set names every logical pin the drive sequencer and flux layer need,
// resolved once at board init time. ReadData, WriteData and Index must
// additionally implement HotLine.
type Set struct {
	Index        Pin // input, active-low pulse, one per revolution
	DriveSelect  Pin // output, active-low
	Motor        Pin // output, active-low
	Dir          Pin // output; low = step-in, high = step-out
	Step         Pin // output, pulsed low-high-low
	ReadData     Pin // input, active-low transitions — must implement HotLine
	WriteData    Pin // output — must implement HotLine
	WriteGate    Pin // output, active-low
	Track00      Pin // input, active-low
	WriteProtect Pin // input, active-low
	HeadSel      Pin // output; high = side 0, low = side 1
	DiskChange   Pin // input, optional; nil if the drive/cable doesn't wire it
}
