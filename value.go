package klv

/*
value.go implements the dynamic value container described in §3/§4.4
of the codec design: a tagged union over Empty, Unparsed(blob) and
Typed(value). This plays the role the teacher package's type-erased
[Primitive]/reflection machinery plays for ASN.1 values, but as a
closed sum over the fixed KLV primitive kinds (§3) rather than an
open registry keyed by Go type — KLV has no schema evolution, so there
is nothing to register.
*/

/*
TypeTag enumerates the primitive value kinds a [Format] can produce.
*/
type TypeTag int

const (
	TagNone TypeTag = iota
	TagBlob
	TagUTF8String
	TagUInt
	TagSInt
	TagFloat
	TagUFLINT
	TagSFLINT
	TagIMAP
	TagUUID
)

func (t TypeTag) String() string {
	switch t {
	case TagBlob:
		return "BLOB"
	case TagUTF8String:
		return "UTF8-STRING"
	case TagUInt:
		return "UINT"
	case TagSInt:
		return "SINT"
	case TagFloat:
		return "FLOAT"
	case TagUFLINT:
		return "UFLINT"
	case TagSFLINT:
		return "SFLINT"
	case TagIMAP:
		return "IMAP"
	case TagUUID:
		return "UUID"
	default:
		return "NONE"
	}
}

type valueState int

const (
	stateEmpty valueState = iota
	stateUnparsed
	stateTyped
)

/*
F64WithLength pairs a double with the on-wire byte length that
produced it (or that will be used to re-encode it). Variable-length
float-bearing formats (Float, UFLINT, SFLINT, IMAP) need both pieces
to preserve round-trip precision and to pick print precision (§4.3).
*/
type F64WithLength struct {
	Value  float64
	Length int
}

/*
DynamicValue is the tagged container produced by every [Format.Read]
call and consumed by every [Format.Write] call. The zero value is
Empty.
*/
type DynamicValue struct {
	state valueState
	tag   TypeTag
	hint  int

	blob []byte
	str  string
	u64  uint64
	i64  int64
	f64  F64WithLength
	uuid [16]byte
}

/*
Empty returns the "unknown/absent" [DynamicValue]. It serializes to
zero bytes.
*/
func Empty() DynamicValue { return DynamicValue{state: stateEmpty} }

/*
Unparsed returns a [DynamicValue] wrapping bytes that could not be
interpreted by any format but must be preserved verbatim. This
constructor is exported for collaborator code that needs to build one
outside of the generic format wrapper's own fallback path (e.g. a
packet layer reconstructing a round-trip from raw input).
*/
func Unparsed(blob []byte, lengthHint int) DynamicValue {
	b := append([]byte(nil), blob...)
	return DynamicValue{state: stateUnparsed, blob: b, hint: lengthHint}
}

func typedBlob(b []byte, hint int) DynamicValue {
	cp := append([]byte(nil), b...)
	return DynamicValue{state: stateTyped, tag: TagBlob, blob: cp, hint: hint}
}

func typedString(s string, hint int) DynamicValue {
	return DynamicValue{state: stateTyped, tag: TagUTF8String, str: s, hint: hint}
}

func typedUint(u uint64, hint int) DynamicValue {
	return DynamicValue{state: stateTyped, tag: TagUInt, u64: u, hint: hint}
}

func typedSint(i int64, hint int) DynamicValue {
	return DynamicValue{state: stateTyped, tag: TagSInt, i64: i, hint: hint}
}

func typedFloat(tag TypeTag, v float64, length int) DynamicValue {
	return DynamicValue{state: stateTyped, tag: tag, f64: F64WithLength{Value: v, Length: length}, hint: length}
}

func typedUUID(u [16]byte) DynamicValue {
	return DynamicValue{state: stateTyped, tag: TagUUID, uuid: u, hint: 16}
}

/*
IsEmpty returns true if the receiver holds no value.
*/
func (r DynamicValue) IsEmpty() bool { return r.state == stateEmpty }

/*
IsUnparsed returns true if the receiver holds bytes that failed to
parse under their format.
*/
func (r DynamicValue) IsUnparsed() bool { return r.state == stateUnparsed }

/*
IsTyped returns true if the receiver holds a successfully decoded
value.
*/
func (r DynamicValue) IsTyped() bool { return r.state == stateTyped }

/*
TypeTag returns the primitive kind held by the receiver, or [TagNone]
if the receiver is Empty or Unparsed.
*/
func (r DynamicValue) TypeTag() TypeTag { return r.tag }

/*
LengthHint returns the optional byte count carried alongside a typed
value, zero if unspecified. For Unparsed values it is always the
blob's exact byte count.
*/
func (r DynamicValue) LengthHint() int {
	switch r.state {
	case stateUnparsed:
		return len(r.blob)
	case stateTyped:
		return r.hint
	default:
		return 0
	}
}

/*
Blob returns the receiver's byte payload alongside an error. It
succeeds for both Unparsed values and Typed values tagged [TagBlob];
any other kind fails with [ErrTypeMismatch].
*/
func (r DynamicValue) Blob() ([]byte, error) {
	if r.state == stateUnparsed || (r.state == stateTyped && r.tag == TagBlob) {
		return r.blob, nil
	}
	return nil, ErrTypeMismatch
}

/*
String returns the receiver's text payload alongside an error. It
fails with [ErrTypeMismatch] unless the receiver is Typed and tagged
[TagUTF8String].
*/
func (r DynamicValue) String() (string, error) {
	if r.state == stateTyped && r.tag == TagUTF8String {
		return r.str, nil
	}
	return "", ErrTypeMismatch
}

/*
Uint64 returns the receiver's unsigned integer payload alongside an
error. It fails with [ErrTypeMismatch] unless the receiver is Typed
and tagged [TagUInt].
*/
func (r DynamicValue) Uint64() (uint64, error) {
	if r.state == stateTyped && r.tag == TagUInt {
		return r.u64, nil
	}
	return 0, ErrTypeMismatch
}

/*
Int64 returns the receiver's signed integer payload alongside an
error. It fails with [ErrTypeMismatch] unless the receiver is Typed
and tagged [TagSInt].
*/
func (r DynamicValue) Int64() (int64, error) {
	if r.state == stateTyped && r.tag == TagSInt {
		return r.i64, nil
	}
	return 0, ErrTypeMismatch
}

/*
Float returns the receiver's [F64WithLength] payload alongside an
error. It fails with [ErrTypeMismatch] unless the receiver is Typed
and tagged one of [TagFloat], [TagUFLINT], [TagSFLINT] or [TagIMAP].
*/
func (r DynamicValue) Float() (F64WithLength, error) {
	switch r.tag {
	case TagFloat, TagUFLINT, TagSFLINT, TagIMAP:
		if r.state == stateTyped {
			return r.f64, nil
		}
	}
	return F64WithLength{}, ErrTypeMismatch
}

/*
UUID returns the receiver's 16-byte payload alongside an error. It
fails with [ErrTypeMismatch] unless the receiver is Typed and tagged
[TagUUID].
*/
func (r DynamicValue) UUID() ([16]byte, error) {
	if r.state == stateTyped && r.tag == TagUUID {
		return r.uuid, nil
	}
	return [16]byte{}, ErrTypeMismatch
}

/*
Display returns a short human-readable rendering of the receiver,
used as the fallback implementation of [Format.Print] when a concrete
format supplies no sharper rendering of its own.
*/
func (r DynamicValue) Display() string {
	switch r.state {
	case stateEmpty:
		return "<empty>"
	case stateUnparsed:
		return "<unparsed:" + itoa(len(r.blob)) + " bytes " + hexstr(r.blob) + ">"
	default:
		switch r.tag {
		case TagBlob:
			return hexstr(r.blob)
		case TagUTF8String:
			return r.str
		case TagUInt:
			return fmtUint(r.u64, 10)
		case TagSInt:
			return fmtInt(r.i64, 10)
		case TagFloat, TagUFLINT, TagSFLINT, TagIMAP:
			return fmtFloat(r.f64.Value, 'g', -1, 64)
		case TagUUID:
			return hexstr(r.uuid[:])
		default:
			return "<unknown>"
		}
	}
}
