package klv

import "testing"

func TestUUIDFormat_RoundTrip(t *testing.T) {
	f := NewUUIDFormat()
	var want [16]byte
	for i := range want {
		want[i] = byte(i)
	}
	wc := NewWriteCursor(16)
	if err := f.Write(NewUUIDValue(want), wc, 16); err != nil {
		t.Fatalf("Write: %v", err)
	}
	rc := NewCursor(wc.Bytes())
	dv, err := f.Read(rc, 16)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got, err := dv.UUID()
	if err != nil || got != want {
		t.Fatalf("round trip = % x, want % x (err %v)", got, want, err)
	}
}

func TestUUIDFormat_PrintRoundTripsThroughGoogleUUID(t *testing.T) {
	f := NewUUIDFormat()
	var raw [16]byte
	for i := range raw {
		raw[i] = byte(i * 17)
	}
	text := f.Print(NewUUIDValue(raw))
	dv, err := ParseUUIDValue(text)
	if err != nil {
		t.Fatalf("ParseUUIDValue(%q): %v", text, err)
	}
	got, err := dv.UUID()
	if err != nil || got != raw {
		t.Fatalf("parsed UUID = % x, want % x (err %v)", got, raw, err)
	}
}

func TestUUIDFormat_FixedLengthEnforced(t *testing.T) {
	f := NewUUIDFormat()
	c := NewCursor(make([]byte, 8))
	if _, err := f.Read(c, 8); err == nil {
		t.Fatalf("expected WrongLength error for a non-16-byte UUID field")
	}
}
