package klv

import "math"

/*
ieeefloat.go implements the IEEE-754 binary32/binary64 float primitive
codec (§4.2) and its concrete format (§4.3). The teacher package's
real.go encodes ASN.1 REAL's mantissa/sign/base/exponent octet form
instead — that machinery does not apply here (§4.2 requires bit-exact
IEEE-754, not ASN.1 REAL), so this file keeps only the teacher's
file-per-numeric-type organization and reimplements the wire format
directly against math.Float32bits/Float64bits.
*/

const (
	float32Digits = 8  // FLT_DIG+2
	float64Digits = 17 // DBL_DIG+2
)

func encodeFloat32(f float32) []byte { return uintToBEWidth(uint64(math.Float32bits(f)), 4) }
func decodeFloat32(b []byte) float32 { return math.Float32frombits(uint32(beWidthToUint(b))) }

func encodeFloat64(f float64) []byte { return uintToBEWidth(math.Float64bits(f), 8) }
func decodeFloat64(b []byte) float64 { return math.Float64frombits(beWidthToUint(b)) }

type floatHooks struct{}

func (floatHooks) typeTag() TypeTag   { return TagFloat }
func (floatHooks) description() string { return "FLOAT (IEEE-754 binary32/binary64, big-endian)" }

func (floatHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length != 4 && length != 8 {
		return DynamicValue{}, errorUnsupportedFloatWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	if length == 4 {
		return typedFloat(TagFloat, float64(decodeFloat32(b)), 4), nil
	}
	return typedFloat(TagFloat, decodeFloat64(b), 8), nil
}

func (floatHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	if need == 4 {
		return c.Write(encodeFloat32(float32(f.Value)), need)
	}
	return c.Write(encodeFloat64(f.Value), need)
}

func (floatHooks) lengthOfTyped(v DynamicValue) (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	if f.Length != 4 && f.Length != 8 {
		return 0, errorUnsupportedFloatWidth(f.Length)
	}
	return f.Length, nil
}

func (floatHooks) printTyped(v DynamicValue) string {
	f, err := v.Float()
	if err != nil {
		return ""
	}
	digits := float64Digits
	if f.Length == 4 {
		digits = float32Digits
	}
	return fmtFloat(f.Value, 'g', digits, 64)
}

/*
NewFloatFormat returns a [Format] for the KLV IEEE-754 float primitive.
fixedLength must be 4 or 8.
*/
func NewFloatFormat(fixedLength int) Format {
	return newGenericFormat("Float", fixedLength, floatHooks{})
}

/*
NewFloat wraps f as a [DynamicValue] for writing through a Float
format. length must be 4 or 8.
*/
func NewFloat(f float64, length int) DynamicValue { return typedFloat(TagFloat, f, length) }
