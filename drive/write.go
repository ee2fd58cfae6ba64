package drive

import (
	"github.com/gofloppy/fdcfw/mfm"
	"github.com/gofloppy/fdcfw/sector"
)

// writeRetries bounds how many revolutions WriteSector will spend before
// giving up (spec.md §4.7).
const writeRetries = 10

// WriteSector seeks to the addressed cylinder and side, then scans for
// the target sector's address mark and data-field sync before streaming
// the replacement payload. If WRITE_PROTECT is asserted at seek time, it
// fails fast without ever asserting WRITE_GATE.
func (d *Drive) WriteSector(head, cylinder, sec int, data [sector.Size]byte) error {
	d.SelectSide(head)
	if err := d.Seek(cylinder); err != nil {
		return err
	}

	if !d.Pins.WriteProtect.Value() {
		return ErrWriteProtected
	}

	preamble := make([]byte, 1+sector.Size)
	preamble[0] = sector.DataMarkNormal
	copy(preamble[1:], data[:])
	symbols := mfm.Encode(preamble)

	for attempt := 0; attempt < writeRetries; attempt++ {
		if !mfm.ScanForSync(d.Source) {
			continue
		}

		hdr := make([]byte, 7)
		n, truncated := mfm.DecodeBytes(d.Source, hdr)
		if truncated || n < len(hdr) {
			continue
		}

		addr, err := sector.UnmarshalAddress(hdr)
		if err != nil || !addr.Valid() || !addr.Matches(cylinder, head, sec) {
			continue
		}

		if !mfm.ScanForSync(d.Source) {
			continue
		}

		mark := make([]byte, 1)
		n, truncated = mfm.DecodeBytes(d.Source, mark)
		if truncated || n < 1 {
			continue
		}
		if mark[0] != sector.DataMarkNormal && mark[0] != sector.DataMarkDeleted {
			return ErrSyncLostInData
		}

		d.Pins.WriteGate.Low()
		for _, sym := range symbols {
			d.Sink.Emit(sym)
		}
		d.Pins.WriteGate.High()
		return nil
	}

	return ErrSectorNotFound
}
