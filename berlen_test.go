package klv

import "testing"

var berLengthBoundaryTests = []struct {
	value uint64
	want  []byte
}{
	{127, []byte{0x7F}},
	{128, []byte{0x81, 0x80}},
	{256, []byte{0x82, 0x01, 0x00}},
	{0, []byte{0x00}},
}

func TestEncodeBERLength_Boundaries(t *testing.T) {
	for _, tt := range berLengthBoundaryTests {
		got := encodeBERLength(tt.value)
		if !bytesEqual(got, tt.want) {
			t.Fatalf("encodeBERLength(%d) = % x, want % x", tt.value, got, tt.want)
		}
	}
}

func TestDecodeBERLength_Boundaries(t *testing.T) {
	for _, tt := range berLengthBoundaryTests {
		value, consumed, err := decodeBERLength(tt.want)
		if err != nil {
			t.Fatalf("decodeBERLength(% x): %v", tt.want, err)
		}
		if value != tt.value || consumed != len(tt.want) {
			t.Fatalf("decodeBERLength(% x) = %d/%d, want %d/%d",
				tt.want, value, consumed, tt.value, len(tt.want))
		}
	}
}

func TestDecodeBERLength_IndeterminateRejected(t *testing.T) {
	if _, _, err := decodeBERLength([]byte{0x80}); err == nil {
		t.Fatalf("expected error for indeterminate (N=0) BER length")
	}
}

func TestPeekBERLength(t *testing.T) {
	buf := append(append([]byte{}, berLengthBoundaryTests[2].want...), 0xFF, 0xFF)
	n, err := PeekBERLength(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len(berLengthBoundaryTests[2].want) {
		t.Fatalf("PeekBERLength = %d, want %d", n, len(berLengthBoundaryTests[2].want))
	}
}

func TestBERFormat_RoundTrip(t *testing.T) {
	f := NewBERFormat()
	for _, tt := range berLengthBoundaryTests {
		need, err := f.LengthOf(NewBERLength(tt.value))
		if err != nil {
			t.Fatalf("LengthOf(%d): %v", tt.value, err)
		}
		wc := NewWriteCursor(need)
		if err := f.Write(NewBERLength(tt.value), wc, need); err != nil {
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

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
