package klv

/*
bigendian.go implements the big-endian signed/unsigned integer
primitive codec (§4.2) and the UInt/SInt concrete formats (§4.3). The
minimal two's-complement encode/decode routines are a direct
structural descendant of the teacher package's int.go
(encodeNativeInt/decodeNativeInt/bEToInt64/int64ToBE), generalized
from native `int` to a fixed int64 width since KLV integers never
exceed 8 bytes (unlike ASN.1 INTEGER, which is unbounded and falls
back to *big.Int beyond int64 — not needed here, §4.2 explicitly
rejects widths over 8).
*/

const maxIntWidth = 8

/*
uintToBEWidth returns the big-endian encoding of v padded or
truncated to exactly width bytes.
*/
func uintToBEWidth(v uint64, width int) []byte {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func beWidthToUint(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = (v << 8) | uint64(x)
	}
	return v
}

/*
sintToBEWidth returns the two's-complement big-endian encoding of v
padded (via sign extension) or truncated to exactly width bytes.
*/
func sintToBEWidth(v int64, width int) []byte { return uintToBEWidth(uint64(v), width) }

func beWidthToSint(b []byte) int64 {
	u := beWidthToUint(b)
	width := len(b)
	if width < 8 && width > 0 {
		shift := uint(64 - 8*width)
		return int64(u<<shift) >> shift
	}
	return int64(u)
}

/*
minimalUintBytes returns the smallest byte count (at least 1) that
represents v as an unsigned big-endian integer.
*/
func minimalUintBytes(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for t := v; t != 0; t >>= 8 {
		n++
	}
	return n
}

/*
minimalSintBytes returns the smallest byte count (at least 1) that
represents v as a two's-complement big-endian integer, preserving its
sign (§4.2: leading 0x00 for non-negative values whose top bit would
otherwise read negative; leading 0xFF for negative values whose top
bit would otherwise read positive).
*/
func minimalSintBytes(v int64) int {
	if v == 0 {
		return 1
	}
	negative := v < 0
	n := 0
	cur := v
	for {
		b := byte(cur & 0xff)
		n++
		cur >>= 8
		if !negative {
			if cur == 0 && b&0x80 == 0 {
				break
			}
		} else {
			if cur == -1 && b&0x80 != 0 {
				break
			}
		}
	}
	return n
}

type uintHooks struct{ fixedLength int }

func (h *uintHooks) typeTag() TypeTag { return TagUInt }
func (h *uintHooks) description() string {
	if h.fixedLength == 0 {
		return "UINT (minimal big-endian unsigned integer)"
	}
	return "UINT(" + itoa(h.fixedLength) + ") (fixed-width big-endian unsigned integer)"
}

func (h *uintHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length > maxIntWidth {
		return DynamicValue{}, errorUnsupportedIntWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	return typedUint(beWidthToUint(b), length), nil
}

func (h *uintHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	u, err := v.Uint64()
	if err != nil {
		return err
	}
	return c.Write(uintToBEWidth(u, need), need)
}

func (h *uintHooks) lengthOfTyped(v DynamicValue) (int, error) {
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	return minimalUintBytes(u), nil
}

/*
NewUIntFormat returns a [Format] for the KLV UInt primitive.
fixedLength == 0 selects minimal-length encoding; a nonzero value
pins every instance to that many big-endian bytes (maxIntWidth == 8).
*/
func NewUIntFormat(fixedLength int) Format {
	return newGenericFormat("UInt", fixedLength, &uintHooks{fixedLength: fixedLength})
}

type sintHooks struct{ fixedLength int }

func (h *sintHooks) typeTag() TypeTag { return TagSInt }
func (h *sintHooks) description() string {
	if h.fixedLength == 0 {
		return "SINT (minimal big-endian two's-complement integer)"
	}
	return "SINT(" + itoa(h.fixedLength) + ") (fixed-width big-endian two's-complement integer)"
}

func (h *sintHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length > maxIntWidth {
		return DynamicValue{}, errorUnsupportedIntWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	return typedSint(beWidthToSint(b), length), nil
}

func (h *sintHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	i, err := v.Int64()
	if err != nil {
		return err
	}
	return c.Write(sintToBEWidth(i, need), need)
}

func (h *sintHooks) lengthOfTyped(v DynamicValue) (int, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, err
	}
	return minimalSintBytes(i), nil
}

/*
NewSIntFormat returns a [Format] for the KLV SInt primitive.
fixedLength == 0 selects minimal-length encoding.
*/
func NewSIntFormat(fixedLength int) Format {
	return newGenericFormat("SInt", fixedLength, &sintHooks{fixedLength: fixedLength})
}

/*
NewUInt wraps u as a [DynamicValue] for writing through a UInt
format. lengthHint may be zero.
*/
func NewUInt(u uint64, lengthHint int) DynamicValue { return typedUint(u, lengthHint) }

/*
NewSInt wraps i as a [DynamicValue] for writing through an SInt
format. lengthHint may be zero.
*/
func NewSInt(i int64, lengthHint int) DynamicValue { return typedSint(i, lengthHint) }
