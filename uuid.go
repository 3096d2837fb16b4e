package klv

import "github.com/google/uuid"

/*
uuid.go implements the fixed 16-byte UUID primitive codec (§4.2) and
its concrete format (§4.3). The wire form stays opaque raw bytes, the
same way blob.go leaves a Blob untouched — but [Format.Print] renders
those bytes through github.com/google/uuid's canonical 8-4-4-4-12
hex-dash text instead of a flat hex dump, the diagnostic wiring named
in the domain-stack expansion.
*/

const uuidLength = 16

type uuidHooks struct{}

func (uuidHooks) typeTag() TypeTag   { return TagUUID }
func (uuidHooks) description() string { return "UUID (16 bytes, opaque)" }

func (uuidHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	var arr [16]byte
	copy(arr[:], b)
	return typedUUID(arr), nil
}

func (uuidHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	arr, err := v.UUID()
	if err != nil {
		return err
	}
	return c.Write(arr[:], need)
}

func (uuidHooks) lengthOfTyped(DynamicValue) (int, error) { return uuidLength, nil }

func (uuidHooks) printTyped(v DynamicValue) string {
	arr, err := v.UUID()
	if err != nil {
		return ""
	}
	return uuid.UUID(arr).String()
}

/*
NewUUIDFormat returns a [Format] for the KLV UUID primitive. It is
always fixed at 16 bytes.
*/
func NewUUIDFormat() Format { return newGenericFormat("UUID", uuidLength, uuidHooks{}) }

/*
NewUUIDValue wraps a 16-byte UUID as a [DynamicValue] for writing
through a UUID format.
*/
func NewUUIDValue(u [16]byte) DynamicValue { return typedUUID(u) }

/*
ParseUUIDValue parses s (canonical 8-4-4-4-12 hex-dash text, or any
form [uuid.Parse] accepts) into a [DynamicValue] for writing through a
UUID format.
*/
func ParseUUIDValue(s string) (DynamicValue, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return DynamicValue{}, err
	}
	return typedUUID(u), nil
}
