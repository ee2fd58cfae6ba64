package sector

import "fmt"

// Size is the payload size of a double-density sector (size_code 2).
const Size = 512

// Data mark bytes identifying a normal versus a deliberately
// soft-deleted sector.
const (
	DataMarkNormal  = 0xFB
	DataMarkDeleted = 0xFA
)

// Data is the data field: data_mark, the 512-byte payload, and a 16-bit
// CRC.
type Data struct {
	DataMark byte
	Payload  [Size]byte
	CRC      uint16
}

// Marshal encodes d into its on-disk representation: data_mark followed
// by the payload. The trailing CRC is not part of this buffer, and the
// drive sequencer writes no CRC field.
func (d Data) Marshal() []byte {
	buf := make([]byte, 1+Size)
	buf[0] = d.DataMark
	copy(buf[1:], d.Payload[:])
	return buf
}

// UnmarshalData decodes a data field buffer: one data_mark byte followed
// by Size payload bytes, plus 2 trailing CRC bytes. The CRC is captured
// but never validated.
func UnmarshalData(buf []byte) (Data, error) {
	if len(buf) < 1+Size+2 {
		return Data{}, fmt.Errorf("sector: short data field (%d bytes)", len(buf))
	}
	var d Data
	d.DataMark = buf[0]
	copy(d.Payload[:], buf[1:1+Size])
	d.CRC = uint16(buf[1+Size])<<8 | uint16(buf[2+Size])
	return d, nil
}

// Valid reports whether the data_mark byte is one of the two legal
// values. A mismatch is the sync-lost-in-data error condition of
// spec.md §7.
func (d Data) Valid() bool {
	return d.DataMark == DataMarkNormal || d.DataMark == DataMarkDeleted
}
