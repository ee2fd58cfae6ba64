package drive

import (
	"testing"

	"github.com/gofloppy/fdcfw/cycle"
	"github.com/gofloppy/fdcfw/flux"
	"github.com/gofloppy/fdcfw/mfm"
	"github.com/gofloppy/fdcfw/pin"
	"github.com/gofloppy/fdcfw/sector"
)

type fakePin struct {
	val       bool
	lowCount  int
	highCount int
}

func (p *fakePin) Out()   {}
func (p *fakePin) In()    {}
func (p *fakePin) High()  { p.val = true; p.highCount++ }
func (p *fakePin) Low()   { p.val = false; p.lowCount++ }
func (p *fakePin) Value() bool { return p.val }

type fakeClock struct{}

func (fakeClock) CyclesPerIteration() uint32 { return 6 }
func (fakeClock) WaitCycles(uint32)          {}
func (fakeClock) TimeEdge(uint32, int, uint32, int) (uint32, bool) {
	return 0, false
}
func (fakeClock) EmitPulse(uint32, int, uint32, uint32) {}

func newFakeDrive() (*Drive, pin.Set) {
	pins := pin.Set{
		Index:        &fakePin{val: true}, // idle-high = not asserted
		DriveSelect:  &fakePin{val: true},
		Motor:        &fakePin{val: true},
		Dir:          &fakePin{},
		Step:         &fakePin{val: true},
		ReadData:     &fakePin{val: true},
		WriteData:    &fakePin{val: true},
		WriteGate:    &fakePin{val: true},
		Track00:      &fakePin{val: true},
		WriteProtect: &fakePin{val: true}, // idle-high = not write-protected
		HeadSel:      &fakePin{val: true},
	}
	d := New(pins, fakeClock{}, 600, 80, 18)
	return d, pins
}

func TestSpinUpNoMedia(t *testing.T) {
	d, pins := newFakeDrive()
	err := d.SpinUp()
	if err != ErrNoMedia {
		t.Fatalf("SpinUp() = %v, want ErrNoMedia", err)
	}
	if d.MotorOn() {
		t.Fatal("SpinUp: motor left on after no-media timeout")
	}
	if mp := pins.Motor.(*fakePin); !mp.val {
		t.Fatal("SpinUp: MOTOR pin left asserted (low) after no-media timeout")
	}
}

func TestCalibrateFindsTrack0(t *testing.T) {
	d, pins := newFakeDrive()
	track00 := pins.Track00.(*fakePin)
	stepsToGo := 5

	// Simulate TRACK00 asserting after a few outward steps by flipping
	// it low once the fake Step pin has toggled enough times.
	d.Pins.Step = &trackingStep{fakePin: &fakePin{val: true}, track00: track00, after: stepsToGo}

	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() = %v, want nil", err)
	}
	if track, known := d.CurrentTrack(); !known || track != 0 {
		t.Fatalf("Calibrate: current track = %d, known=%v, want 0/true", track, known)
	}
}

// trackingStep asserts TRACK00 (active low) after a fixed number of
// falling edges on STEP, simulating a drive that reaches the stop after a
// few calibration steps.
type trackingStep struct {
	*fakePin
	track00 *fakePin
	count   int
	after   int
}

func (s *trackingStep) Low() {
	s.fakePin.Low()
	s.count++
	if s.count >= s.after {
		s.track00.val = false
	}
}

func TestReadSectorSuccess(t *testing.T) {
	d, pins := newFakeDrive()
	pins.Track00.(*fakePin).val = false // already at track 0
	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() = %v", err)
	}

	addrBytes := []byte{0xFE, 7, 0, 2, 2, 0, 0}
	var payload [sector.Size]byte
	for i := range payload {
		payload[i] = byte(i)
	}
	dataBytes := append([]byte{sector.DataMarkNormal}, payload[:]...)
	dataBytes = append(dataBytes, 0, 0)

	var stream flux.Pattern
	for i := 0; i < 100; i++ {
		stream = append(stream, flux.Short)
	}
	stream = append(stream, mfm.SyncPattern...)
	stream = append(stream, mfm.Encode(addrBytes)...)
	for i := 0; i < 100; i++ {
		stream = append(stream, flux.Short)
	}
	stream = append(stream, mfm.SyncPattern...)
	stream = append(stream, mfm.Encode(dataBytes)...)

	d.Source = flux.NewSliceSource(stream)

	got, err := d.ReadSector(0, 7, 2)
	if err != nil {
		t.Fatalf("ReadSector() = %v, want nil", err)
	}
	if got != payload {
		t.Fatal("ReadSector: payload mismatch")
	}
}

func TestReadSectorWrongTrackSnapsState(t *testing.T) {
	d, pins := newFakeDrive()
	pins.Track00.(*fakePin).val = false
	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() = %v", err)
	}

	// Address field reports cylinder 9 while we asked for cylinder 7.
	addrBytes := []byte{0xFE, 9, 0, 2, 2, 0, 0}

	var stream flux.Pattern
	for i := 0; i < 100; i++ {
		stream = append(stream, flux.Short)
	}
	stream = append(stream, mfm.SyncPattern...)
	stream = append(stream, mfm.Encode(addrBytes)...)

	d.Source = flux.NewSliceSource(stream)

	_, err := d.ReadSector(0, 7, 2)
	if err != ErrSectorNotFound {
		t.Fatalf("ReadSector() = %v, want ErrSectorNotFound (stream exhausted after snap-reseek)", err)
	}
	if track, known := d.CurrentTrack(); !known || track != 7 {
		// Seek after the snap moves current_track back to the requested
		// cylinder (7); the snap itself is an internal, momentary state
		// used only to compute the re-seek distance.
		t.Fatalf("CurrentTrack() = %d/%v, want 7/true after re-seek", track, known)
	}
}

func TestWriteSectorWriteProtected(t *testing.T) {
	d, pins := newFakeDrive()
	pins.Track00.(*fakePin).val = false
	if err := d.Calibrate(); err != nil {
		t.Fatalf("Calibrate() = %v", err)
	}
	pins.WriteProtect.(*fakePin).val = false // asserted (active-low)

	sink := &flux.SliceSink{}
	d.Sink = sink

	var payload [sector.Size]byte
	err := d.WriteSector(0, 0, 1, payload)
	if err != ErrWriteProtected {
		t.Fatalf("WriteSector() = %v, want ErrWriteProtected", err)
	}

	gate := pins.WriteGate.(*fakePin)
	if gate.lowCount != 0 {
		t.Fatalf("WriteSector: WRITE_GATE was asserted %d times on a write-protected medium, want 0", gate.lowCount)
	}
}

var _ cycle.Clock = fakeClock{}
