package klv

import (
	"math"
	"testing"
)

func TestIMAPFormat_PosInfRoundTrip(t *testing.T) {
	f, err := NewIMAPFormat(-900.0, 19000.0, 2)
	if err != nil {
		t.Fatalf("NewIMAPFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagIMAP, math.Inf(1), 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
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
	if !math.IsInf(got.Value, 1) {
		t.Fatalf("round trip +Inf -> %v", got.Value)
	}
}

func TestIMAPFormat_NegInfRoundTrip(t *testing.T) {
	f, err := NewIMAPFormat(-900.0, 19000.0, 2)
	if err != nil {
		t.Fatalf("NewIMAPFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagIMAP, math.Inf(-1), 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rc := NewCursor(wc.Bytes())
	dv, _ := f.Read(rc, 2)
	got, _ := dv.Float()
	if !math.IsInf(got.Value, -1) {
		t.Fatalf("round trip -Inf -> %v", got.Value)
	}
}

func TestIMAPFormat_ZeroWithinOneLSB(t *testing.T) {
	f, err := NewIMAPFormat(-900.0, 19000.0, 2)
	if err != nil {
		t.Fatalf("NewIMAPFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagIMAP, 0.0, 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rc := NewCursor(wc.Bytes())
	dv, _ := f.Read(rc, 2)
	got, _ := dv.Float()

	codec := &imapCodec{min: -900.0, max: 19000.0, length: 2}
	if math.Abs(got.Value-0.0) > codec.step() {
		t.Fatalf("round trip 0.0 -> %v, want within one LSB step %v", got.Value, codec.step())
	}
}

func TestIMAPFormat_NaNRoundTrip(t *testing.T) {
	f, err := NewIMAPFormat(-900.0, 19000.0, 2)
	if err != nil {
		t.Fatalf("NewIMAPFormat: %v", err)
	}
	wc := NewWriteCursor(2)
	if err := f.Write(NewMappedFloat(TagIMAP, math.NaN(), 2), wc, 2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rc := NewCursor(wc.Bytes())
	dv, _ := f.Read(rc, 2)
	got, _ := dv.Float()
	if !math.IsNaN(got.Value) {
		t.Fatalf("round trip NaN -> %v", got.Value)
	}
}

func TestIMAPFormat_InvalidRangeRejected(t *testing.T) {
	if _, err := NewIMAPFormat(10, 10, 2); err == nil {
		t.Fatalf("expected ClosedRange error for min == max")
	}
}
