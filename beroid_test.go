package klv

import "testing"

var berOIDBoundaryTests = []struct {
	value uint64
	want  []byte
}{
	{0, []byte{0x00}},
	{127, []byte{0x7F}},
	{128, []byte{0x81, 0x00}},
	{16383, []byte{0xFF, 0x7F}},
	{16384, []byte{0x81, 0x80, 0x00}},
}

func TestEncodeBEROID_Boundaries(t *testing.T) {
	for _, tt := range berOIDBoundaryTests {
		got := encodeBEROID(tt.value)
		if !bytesEqual(got, tt.want) {
			t.Fatalf("encodeBEROID(%d) = % x, want % x", tt.value, got, tt.want)
		}
	}
}

func TestDecodeBEROID_Boundaries(t *testing.T) {
	for _, tt := range berOIDBoundaryTests {
		value, consumed, err := decodeBEROID(tt.want)
		if err != nil {
			t.Fatalf("decodeBEROID(% x): %v", tt.want, err)
		}
		if value != tt.value || consumed != len(tt.want) {
			t.Fatalf("decodeBEROID(% x) = %d/%d, want %d/%d",
				tt.want, value, consumed, tt.value, len(tt.want))
		}
	}
}

func TestDecodeBEROID_MaxUint64RoundTrip(t *testing.T) {
	const max = ^uint64(0)
	enc := encodeBEROID(max)
	if len(enc) > maxOIDBytes {
		t.Fatalf("encoded max uint64 into %d bytes, want <= %d", len(enc), maxOIDBytes)
	}
	value, consumed, err := decodeBEROID(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != max || consumed != len(enc) {
		t.Fatalf("round trip max uint64 -> %d/%d", value, consumed)
	}
}

func TestDecodeBEROID_OverflowPast64Bits(t *testing.T) {
	// 10 continuation bytes plus a final byte exceed both the 10-byte cap and 64 bits.
	overlong := make([]byte, 11)
	for i := range overlong {
		overlong[i] = 0xFF
	}
	overlong[len(overlong)-1] = 0x7F
	if _, _, err := decodeBEROID(overlong); err == nil {
		t.Fatalf("expected OverflowInDecode for an 11-byte varint")
	}
}

func TestBEROIDFormat_RoundTrip(t *testing.T) {
	f := NewBEROIDFormat()
	for _, tt := range berOIDBoundaryTests {
		need, err := f.LengthOf(NewBEROID(tt.value))
		if err != nil {
			t.Fatalf("LengthOf(%d): %v", tt.value, err)
		}
		wc := NewWriteCursor(need)
		if err := f.Write(NewBEROID(tt.value), wc, need); err != nil {
			t.Fatalf("Write(%d): %v", tt.value, err)
		}
		rc := NewCursor(wc.Bytes())
		v, err := f.Read(rc, need)
		if err != nil {
			t.Fatalf("Read(%d): %v", tt.value, err)
		}
		got, err := v.Uint64()
		if err != nil || got != tt.value {
			t.Fatalf("round trip %d -> %d (err %v)", tt.value, got, err)
		}
	}
}
