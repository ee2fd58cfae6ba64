package drive

import (
	"github.com/gofloppy/fdcfw/mfm"
	"github.com/gofloppy/fdcfw/sector"
)

// addrRetries bounds how many revolutions ReadSector will spend looking
// for the target address mark before giving up (spec.md §4.6).
const addrRetries = 36

// ReadSector sets the side, seeks to cylinder, then scans up to
// addrRetries revolutions for the requested sector's address field
// followed by its data field.
func (d *Drive) ReadSector(head, cylinder, sec int) ([sector.Size]byte, error) {
	d.SelectSide(head)
	if err := d.Seek(cylinder); err != nil {
		return [sector.Size]byte{}, err
	}

	for attempt := 0; attempt < addrRetries; attempt++ {
		if !mfm.ScanForSync(d.Source) {
			continue
		}

		hdr := make([]byte, 7)
		n, truncated := mfm.DecodeBytes(d.Source, hdr)
		if truncated || n < len(hdr) {
			continue
		}

		addr, err := sector.UnmarshalAddress(hdr)
		if err != nil || !addr.Valid() {
			continue
		}

		if addr.Cylinder != cylinder {
			// The current-track state disagrees with the medium: snap
			// to what was actually observed and re-seek before trying
			// again (spec.md §4.6).
			d.currentTrack = addr.Cylinder
			if err := d.Seek(cylinder); err != nil {
				return [sector.Size]byte{}, err
			}
			continue
		}

		if !addr.Matches(cylinder, head, sec) {
			continue
		}

		if !mfm.ScanForSync(d.Source) {
			continue
		}

		buf := make([]byte, 1+sector.Size+2)
		n, truncated = mfm.DecodeBytes(d.Source, buf)
		if truncated {
			continue
		}

		df, err := sector.UnmarshalData(buf)
		if err != nil {
			continue
		}
		if !df.Valid() {
			return [sector.Size]byte{}, ErrSyncLostInData
		}

		return df.Payload, nil
	}

	return [sector.Size]byte{}, ErrSectorNotFound
}
