package klv

import (
	"math"
	"testing"
)

func TestUFLINTFormat_Example(t *testing.T) {
	f, err := NewUFLINTFormat(0.0, 100.0, 2, false)
	if err != nil {
		t.Fatalf("NewUFLINTFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagUFLINT, 50.0, 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	n := beWidthToUint(wc.Bytes())
	if n != 32767 && n != 32768 {
		t.Fatalf("encode(50.0) = %d, want 32767 or 32768 (+/-1 LSB)", n)
	}
	rc := NewCursor(wc.Bytes())
	dv, err := f.Read(rc, 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, err := dv.Float()
	if err != nil {
		t.Fatalf("Float(): %v", err)
	}
	const lsb = 100.0 / 65535.0
	if math.Abs(got.Value-50.0) > lsb {
		t.Fatalf("round trip 50.0 -> %v, want within %v", got.Value, lsb)
	}
}

func TestUFLINTFormat_ClampsOnEncode(t *testing.T) {
	f, err := NewUFLINTFormat(0.0, 100.0, 2, false)
	if err != nil {
		t.Fatalf("NewUFLINTFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagUFLINT, 500.0, 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rc := NewCursor(wc.Bytes())
	dv, _ := f.Read(rc, 2)
	got, _ := dv.Float()
	if got.Value != 100.0 {
		t.Fatalf("clamp(500.0) -> %v, want 100.0", got.Value)
	}
}

func TestUFLINTFormat_StrictRejectsOutOfRange(t *testing.T) {
	f, err := NewUFLINTFormat(0.0, 100.0, 2, true)
	if err != nil {
		t.Fatalf("NewUFLINTFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagUFLINT, 500.0, 2), wc, 2); err == nil {
		t.Fatalf("expected OutOfRange error in strict mode")
	}
}

func TestUFLINTFormat_InvalidRangeRejected(t *testing.T) {
	if _, err := NewUFLINTFormat(10, 10, 2, false); err == nil {
		t.Fatalf("expected ClosedRange error for min == max")
	}
	if _, err := NewUFLINTFormat(10, 5, 2, false); err == nil {
		t.Fatalf("expected ClosedRange error for min > max")
	}
}

func TestSFLINTFormat_RoundTripAndMidpoint(t *testing.T) {
	f, err := NewSFLINTFormat(-100.0, 100.0, 2, false)
	if err != nil {
		t.Fatalf("NewSFLINTFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagSFLINT, 0.0, 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	n := beWidthToSint(wc.Bytes())
	if n != 0 {
		t.Fatalf("encode(0.0) at midpoint = %d, want 0", n)
	}
	rc := NewCursor(wc.Bytes())
	dv, err := f.Read(rc, 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, _ := dv.Float()
	if got.Value != 0.0 {
		t.Fatalf("round trip 0.0 -> %v", got.Value)
	}
}

func TestClampMonotonic(t *testing.T) {
	f, err := NewUFLINTFormat(-10, 10, 2, false)
	if err != nil {
		t.Fatalf("NewUFLINTFormat: %v", err)
	}
	prev := -1
	for _, v := range []float64{-20, -10, -5, 0, 5, 10, 20} {
		wc := NewWriteCursor(2)
		if err := f.Write(NewMappedFloat(TagUFLINT, v, 2), wc, 2); err != nil {
			t.Fatalf("Write(%v): %v", v, err)
		}
		n := int(beWidthToUint(wc.Bytes()))
		if n < prev {
			t.Fatalf("encoding not monotonic at %v: %d < %d", v, n, prev)
		}
		prev = n
	}
}
