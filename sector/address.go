// Package sector implements the fixed-layout address and data field
// records of an IBM System 34 double-density sector: marshaling them to
// and from the byte buffers that mfm.Encode/mfm.DecodeBytes operate on
// (spec.md §3).
package sector

import "fmt"

// AddressMark is the expected mark_id byte of a sector's address field.
const AddressMark = 0xFE

// Address is the 7-byte address field: mark_id, cylinder, head, sector,
// size_code, followed by a 16-bit CRC.
type Address struct {
	MarkID   byte
	Cylinder int
	Head     int
	Sector   int
	SizeCode int
	CRC      uint16
}

// Marshal encodes a into its on-disk 7-byte representation.
func (a Address) Marshal() [7]byte {
	var buf [7]byte
	buf[0] = a.MarkID
	buf[1] = byte(a.Cylinder)
	buf[2] = byte(a.Head)
	buf[3] = byte(a.Sector)
	buf[4] = byte(a.SizeCode)
	buf[5] = byte(a.CRC >> 8)
	buf[6] = byte(a.CRC)
	return buf
}

// UnmarshalAddress decodes a 7-byte address field. The CRC bytes are
// captured but never validated, per spec.md §9.
func UnmarshalAddress(buf []byte) (Address, error) {
	if len(buf) < 7 {
		return Address{}, fmt.Errorf("sector: short address field (%d bytes)", len(buf))
	}
	return Address{
		MarkID:   buf[0],
		Cylinder: int(buf[1]),
		Head:     int(buf[2]),
		Sector:   int(buf[3]),
		SizeCode: int(buf[4]),
		CRC:      uint16(buf[5])<<8 | uint16(buf[6]),
	}, nil
}

// Valid reports whether the mark_id identifies this as an address field at
// all. It does not check the CRC.
func (a Address) Valid() bool {
	return a.MarkID == AddressMark
}

// Matches reports whether the address field identifies the requested
// cylinder, head and sector.
func (a Address) Matches(cylinder, head, sector int) bool {
	return a.Cylinder == cylinder && a.Head == head && a.Sector == sector
}
