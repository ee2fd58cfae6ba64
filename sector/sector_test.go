package sector

import "testing"

func TestAddressRoundTrip(t *testing.T) {
	a := Address{MarkID: AddressMark, Cylinder: 7, Head: 0, Sector: 2, SizeCode: 2, CRC: 0xABCD}
	buf := a.Marshal()

	got, err := UnmarshalAddress(buf[:])
	if err != nil {
		t.Fatalf("UnmarshalAddress: %v", err)
	}
	if got != a {
		t.Fatalf("UnmarshalAddress(Marshal(a)) = %+v, want %+v", got, a)
	}
	if !got.Valid() {
		t.Fatal("Valid: expected true for mark_id 0xFE")
	}
	if !got.Matches(7, 0, 2) {
		t.Fatal("Matches: expected true for identical cylinder/head/sector")
	}
	if got.Matches(9, 0, 2) {
		t.Fatal("Matches: expected false for differing cylinder")
	}
}

func TestAddressUnmarshalShort(t *testing.T) {
	if _, err := UnmarshalAddress([]byte{0xFE, 1, 2}); err == nil {
		t.Fatal("UnmarshalAddress: expected error for short buffer")
	}
}

func TestDataRoundTrip(t *testing.T) {
	var d Data
	d.DataMark = DataMarkNormal
	for i := range d.Payload {
		d.Payload[i] = byte(i)
	}

	buf := d.Marshal()
	buf = append(buf, 0x12, 0x34)

	got, err := UnmarshalData(buf)
	if err != nil {
		t.Fatalf("UnmarshalData: %v", err)
	}
	if got.DataMark != d.DataMark || got.Payload != d.Payload {
		t.Fatal("UnmarshalData(Marshal(d)+crc): payload/mark mismatch")
	}
	if got.CRC != 0x1234 {
		t.Fatalf("UnmarshalData: CRC = %#x, want 0x1234", got.CRC)
	}
	if !got.Valid() {
		t.Fatal("Valid: expected true for data_mark 0xFB")
	}
}

func TestDataInvalidMark(t *testing.T) {
	d := Data{DataMark: 0x00}
	if d.Valid() {
		t.Fatal("Valid: expected false for unrecognized data_mark")
	}
}
