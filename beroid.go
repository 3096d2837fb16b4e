package klv

/*
beroid.go implements the BER-OID 7-bit varint primitive codec (§4.2)
and its concrete format (§4.3). The accumulate-7-bits-per-byte decode
loop and the high-bit-per-continuation-byte encode loop descend from
the teacher package's OID subidentifier codec in oid.go
(encodeVLQ/readBER's inner loop), narrowed from arbitrary-precision
(*big.Int, for OID arcs of unbounded size) to a fixed uint64 accumulator
— KLV never needs subidentifiers beyond 64 bits (§4.2 caps the decode
at 10 bytes and fails past that with OverflowInDecode).
*/

const maxOIDBytes = 10

/*
encodeBEROID returns the shortest BER-OID (VLQ) encoding of v: 7 bits
per byte, big-endian order, every byte but the last with its top bit
set.
*/
func encodeBEROID(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var buf [maxOIDBytes]byte
	i := len(buf)
	for v > 0 {
		i--
		b := byte(v & 0x7f)
		if i != len(buf)-1 {
			b |= 0x80
		}
		buf[i] = b
		v >>= 7
	}
	return append([]byte(nil), buf[i:]...)
}

/*
decodeBEROID accumulates 7 bits per byte from the front of b until a
byte with its top bit clear is consumed, returning the decoded value
and the number of bytes read. It fails with [OverflowInDecode] if the
accumulation would exceed 64 bits.
*/
func decodeBEROID(b []byte) (value uint64, consumed int, err error) {
	var v uint64
	for i := 0; i < len(b); i++ {
		if i == maxOIDBytes {
			return 0, 0, errorOverflowInDecode()
		}
		byt := b[i]
		if v > (1<<57)-1 {
			return 0, 0, errorOverflowInDecode()
		}
		v = (v << 7) | uint64(byt&0x7f)
		if byt&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, Truncated
}

type berOIDHooks struct{}

func (berOIDHooks) typeTag() TypeTag { return TagUInt }
func (berOIDHooks) description() string {
	return "BER-OID (7-bit-per-byte unsigned varint, shortest form)"
}

func (berOIDHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	value, consumed, err := decodeBEROID(b)
	if err != nil {
		return DynamicValue{}, err
	}
	if consumed != length {
		return DynamicValue{}, errorLengthMismatch(length, consumed)
	}
	return typedUint(value, length), nil
}

func (berOIDHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	u, err := v.Uint64()
	if err != nil {
		return err
	}
	return c.Write(encodeBEROID(u), need)
}

func (berOIDHooks) lengthOfTyped(v DynamicValue) (int, error) {
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	return len(encodeBEROID(u)), nil
}

/*
NewBEROIDFormat returns a [Format] for the KLV BER-OID primitive.
*/
func NewBEROIDFormat() Format { return newGenericFormat("BER-OID", 0, berOIDHooks{}) }

/*
NewBEROID wraps u as a [DynamicValue] for writing through a BER-OID
format.
*/
func NewBEROID(u uint64) DynamicValue { return typedUint(u, 0) }
