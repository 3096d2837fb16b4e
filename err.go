package klv

/*
err.go contains the error kinds surfaced by this package and the
constructors used to build them. The approach (interned formatted
errors built through a small helper) mirrors the teacher package's
err.go, trimmed to the kinds this codec core actually needs.
*/

import "sync"

/*
ErrorKind enumerates the distinct failure modes a [Format] or
[Cursor] operation can report. See the package-level Err* sentinel
values for the zero-argument forms, and the errorXxx constructors
below for the parameterized forms.
*/
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTruncated
	KindOverflow
	KindWrongLength
	KindOverflowInDecode
	KindUnsupportedFloatWidth
	KindOutOfRange
	KindTypeMismatch
	KindLengthMismatch
	KindNilCursor
	KindClosedRange
	KindIndeterminateLength
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "Truncated"
	case KindOverflow:
		return "Overflow"
	case KindWrongLength:
		return "WrongLength"
	case KindOverflowInDecode:
		return "OverflowInDecode"
	case KindUnsupportedFloatWidth:
		return "UnsupportedFloatWidth"
	case KindOutOfRange:
		return "OutOfRange"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindLengthMismatch:
		return "LengthMismatch"
	case KindNilCursor:
		return "NilCursor"
	case KindClosedRange:
		return "ClosedRange"
	case KindIndeterminateLength:
		return "IndeterminateLength"
	default:
		return "None"
	}
}

/*
CodecError is the concrete error type returned by every failure path
in this package. Callers that need to branch on failure mode should
use [errors.As] against *CodecError and inspect Kind, rather than
matching on the formatted message.
*/
type CodecError struct {
	Kind ErrorKind
	msg  string
}

func (e *CodecError) Error() string { return e.msg }

var errCache sync.Map

func newCodecError(kind ErrorKind, parts ...string) *CodecError {
	b := newStrBuilder()
	for _, p := range parts {
		b.WriteString(p)
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(*CodecError)
	}
	e := &CodecError{Kind: kind, msg: msg}
	errCache.Store(msg, e)
	return e
}

/*
Truncated is returned when a [Cursor] read would advance past the
end of the underlying buffer.
*/
var Truncated = newCodecError(KindTruncated, "klv: truncated read")

/*
Overflow is the zero-argument error of kind KindOverflow. [Cursor] and
[Format] writes that would advance past the caller-supplied maximum
length return a separate KindOverflow error built by errorOverflow,
which names both byte counts; match on Kind, not on this value.
*/
var Overflow = newCodecError(KindOverflow, "klv: write overflow")

/*
ErrTypeMismatch is returned by DynamicValue accessors when the
requested kind does not match the value actually held.
*/
var ErrTypeMismatch = newCodecError(KindTypeMismatch, "klv: type mismatch")

/*
ErrNilCursor is returned when a nil [*Cursor] is passed to
[Format.Write], or to [Format.Read] with a nonzero length.
*/
var ErrNilCursor = newCodecError(KindNilCursor, "klv: nil cursor")

func errorWrongLength(expected, got int) error {
	return newCodecError(KindWrongLength, "klv: wrong length: expected ",
		itoa(expected), ", got ", itoa(got))
}

func errorOverflow(need, max int) error {
	return newCodecError(KindOverflow, "klv: overflow: need ", itoa(need),
		" bytes, have ", itoa(max))
}

func errorOverflowInDecode() error {
	return newCodecError(KindOverflowInDecode, "klv: varint exceeds 64 bits")
}

func errorUnsupportedFloatWidth(length int) error {
	return newCodecError(KindUnsupportedFloatWidth,
		"klv: unsupported float width: ", itoa(length), " (want 4 or 8)")
}

func errorOutOfRange(value, min, max float64) error {
	return newCodecError(KindOutOfRange, "klv: value ",
		fmtFloat(value, 'g', -1, 64), " out of range [",
		fmtFloat(min, 'g', -1, 64), ", ", fmtFloat(max, 'g', -1, 64), "]")
}

func errorLengthMismatch(computed, actual int) error {
	return newCodecError(KindLengthMismatch, "klv: length mismatch: computed ",
		itoa(computed), ", actual ", itoa(actual))
}

func errorClosedRange(min, max float64) error {
	return newCodecError(KindClosedRange, "klv: invalid range [",
		fmtFloat(min, 'g', -1, 64), ", ", fmtFloat(max, 'g', -1, 64), "]")
}

func errorUnsupportedIntWidth(length int) error {
	return newCodecError(KindWrongLength, "klv: unsupported integer width: ",
		itoa(length), " (want 1..8)")
}

func errorIndeterminateLength() error {
	return newCodecError(KindIndeterminateLength,
		"klv: indeterminate BER length (N=0) not supported")
}
