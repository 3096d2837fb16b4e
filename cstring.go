package klv

/*
cstring.go implements the counted-string primitive codec (§4.2) and
its concrete format (§4.3): raw bytes of exactly the announced length,
read back verbatim (including any trailing NUL bytes) and never padded
on write. Grounded the same way blob.go is, on the teacher's
OctetString (oct.go), since a counted string here is an OctetString
that happens to be interpreted as text rather than opaque bytes — Go
strings hold arbitrary bytes including embedded NULs natively, so no
trimming logic is needed in either direction.
*/

type cstringHooks struct{}

func (cstringHooks) typeTag() TypeTag   { return TagUTF8String }
func (cstringHooks) description() string { return "STRING (counted, exact length, NULs preserved)" }

func (cstringHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	return typedString(string(b), length), nil
}

func (cstringHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	s, err := v.String()
	if err != nil {
		return err
	}
	return c.Write([]byte(s), need)
}

func (cstringHooks) lengthOfTyped(v DynamicValue) (int, error) {
	s, err := v.String()
	if err != nil {
		return 0, err
	}
	return len(s), nil
}

/*
NewStringFormat returns a [Format] for the KLV counted-string
primitive. fixedLength == 0 selects variable length.
*/
func NewStringFormat(fixedLength int) Format {
	return newGenericFormat("String", fixedLength, cstringHooks{})
}

/*
NewString wraps s as a [DynamicValue] for writing through a String
format.
*/
func NewString(s string) DynamicValue { return typedString(s, len(s)) }
