package klv

/*
berlen.go implements the BER length primitive codec (§4.2) and its
concrete format (§4.3). The short/long form split and the shortest-
encoding rule are a direct descendant of the teacher package's
parseLength/encodeDERLengthInto (pkt.go/der.go); the indefinite-length
branch those two support has no KLV equivalent (KLV never defers a
length) and is dropped — decodeBERLength rejects N==0 outright instead
of entering a search-for-end-of-contents loop.
*/

/*
encodeBERLength returns the canonical BER encoding of v: a single byte
for v < 128, otherwise a header byte 0x80|N followed by the minimal
big-endian encoding of v in N bytes.
*/
func encodeBERLength(v uint64) []byte {
	if v < 128 {
		return []byte{byte(v)}
	}
	n := minimalUintBytes(v)
	out := make([]byte, 1+n)
	out[0] = 0x80 | byte(n)
	copy(out[1:], uintToBEWidth(v, n))
	return out
}

/*
decodeBERLength reads one BER length value from the front of b,
returning the decoded value and the number of bytes consumed.
*/
func decodeBERLength(b []byte) (value uint64, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, Truncated
	}
	first := b[0]
	if first&0x80 == 0 {
		return uint64(first), 1, nil
	}
	n := int(first & 0x7f)
	if n == 0 {
		return 0, 0, errorIndeterminateLength()
	}
	if n > maxIntWidth {
		return 0, 0, errorUnsupportedIntWidth(n)
	}
	if 1+n > len(b) {
		return 0, 0, Truncated
	}
	return beWidthToUint(b[1 : 1+n]), 1 + n, nil
}

/*
PeekBERLength reports how many bytes the BER length value at the
front of b occupies, without constructing a [Cursor]. Collaborators
use this to pre-parse a surrounding length before calling [Format.Read]
with the resulting byte count (§6).
*/
func PeekBERLength(b []byte) (consumed int, err error) {
	_, consumed, err = decodeBERLength(b)
	return
}

type berHooks struct{}

func (berHooks) typeTag() TypeTag   { return TagUInt }
func (berHooks) description() string { return "BER (ITU-T X.690 length field, shortest form)" }

func (berHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	value, consumed, err := decodeBERLength(b)
	if err != nil {
		return DynamicValue{}, err
	}
	if consumed != length {
		return DynamicValue{}, errorLengthMismatch(length, consumed)
	}
	return typedUint(value, length), nil
}

func (berHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	u, err := v.Uint64()
	if err != nil {
		return err
	}
	return c.Write(encodeBERLength(u), need)
}

func (berHooks) lengthOfTyped(v DynamicValue) (int, error) {
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if u < 128 {
		return 1, nil
	}
	return 1 + minimalUintBytes(u), nil
}

/*
NewBERFormat returns a [Format] for the KLV BER length primitive.
*/
func NewBERFormat() Format { return newGenericFormat("BER", 0, berHooks{}) }

/*
NewBERLength wraps u as a [DynamicValue] for writing through a BER
format.
*/
func NewBERLength(u uint64) DynamicValue { return typedUint(u, 0) }
