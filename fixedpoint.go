package klv

import "golang.org/x/exp/constraints"

/*
fixedpoint.go implements the UFLINT/SFLINT linear-mapped-integer
primitive codecs (§4.2) and their concrete formats (§4.3). Both map a
fixed-width on-wire integer onto a caller-configured real-valued range;
the clamp/round helpers are generic over any [constraints.Float] the
same way the teacher package's constr_on.go parameterizes its
Constraint prefabs over [constraints.Integer]/[constraints.Float] —
reused here directly rather than reinvented, since KLV's two mapped-
integer formats need exactly this generic clamp-then-round shape and
nothing tied to ASN.1 Constraint semantics.
*/

func clampFloat[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundNearest[T constraints.Float](v T) T {
	if v >= 0 {
		return T(int64(v + 0.5))
	}
	return T(int64(v - 0.5))
}

func mappedPrintDigits(bits int) int {
	// ceil(bits * log10(2)); log10(2) ~= 0.30103
	n := bits * 30103
	digits := n / 100000
	if n%100000 != 0 {
		digits++
	}
	return digits
}

/*
uflintCodec holds the configured range and width shared by a UFLINT
format's read/write/length hooks.
*/
type uflintCodec struct {
	min, max float64
	length   int
	strict   bool
}

func (u *uflintCodec) denom() float64 {
	return float64((uint64(1) << uint(8*u.length)) - 1)
}

func (u *uflintCodec) encode(value float64) uint64 {
	clamped := clampFloat(value, u.min, u.max)
	n := roundNearest((clamped - u.min) * u.denom() / (u.max - u.min))
	if n < 0 {
		n = 0
	}
	if max := u.denom(); n > max {
		n = max
	}
	return uint64(n)
}

func (u *uflintCodec) decode(n uint64) float64 {
	return u.min + float64(n)*(u.max-u.min)/u.denom()
}

type uflintHooks struct{ c *uflintCodec }

func (h *uflintHooks) typeTag() TypeTag { return TagUFLINT }
func (h *uflintHooks) description() string {
	return "UFLINT (linear-mapped unsigned integer, [" +
		fmtFloat(h.c.min, 'g', -1, 64) + ", " + fmtFloat(h.c.max, 'g', -1, 64) + "])"
}

func (h *uflintHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length > maxIntWidth {
		return DynamicValue{}, errorUnsupportedIntWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	n := beWidthToUint(b)
	return typedFloat(TagUFLINT, h.c.decode(n), length), nil
}

func (h *uflintHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	if h.c.strict && (f.Value < h.c.min || f.Value > h.c.max) {
		return errorOutOfRange(f.Value, h.c.min, h.c.max)
	}
	return c.Write(uintToBEWidth(h.c.encode(f.Value), need), need)
}

func (h *uflintHooks) lengthOfTyped(v DynamicValue) (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return f.Length, nil
}

func (h *uflintHooks) printTyped(v DynamicValue) string {
	f, err := v.Float()
	if err != nil {
		return ""
	}
	return fmtFloat(f.Value, 'g', mappedPrintDigits(8*f.Length), 64)
}

/*
NewUFLINTFormat returns a [Format] for a UFLINT(min, max, length)
primitive. length is fixed at construction time; min must be < max. If
strict is true, encoding a value outside [min, max] fails with
[OutOfRange] instead of clamping (§7's default-is-clamp policy).
*/
func NewUFLINTFormat(min, max float64, length int, strict bool) (Format, error) {
	if !(min < max) {
		return nil, errorClosedRange(min, max)
	}
	return newGenericFormat("UFLINT", length, &uflintHooks{c: &uflintCodec{min: min, max: max, length: length, strict: strict}}), nil
}

/*
sflintCodec holds the configured symmetric range and width shared by an
SFLINT format's read/write/length hooks. Zero maps to the midpoint of
[min, max]; the positive and negative code spans are each normalized
against 2^(8L-1) - 1, so the single most-negative code (-2^(8L-1))
maps fractionally past min by one code step — this is the same
asymmetry every two's-complement symmetric range codec has, and is an
explicitly accepted rounding edge rather than a bug.
*/
type sflintCodec struct {
	min, max float64
	length   int
	strict   bool
}

func (s *sflintCodec) mid() float64      { return (s.min + s.max) / 2 }
func (s *sflintCodec) halfRange() float64 { return (s.max - s.min) / 2 }
func (s *sflintCodec) denom() float64 {
	return float64((int64(1) << uint(8*s.length-1)) - 1)
}

func (s *sflintCodec) encode(value float64) int64 {
	clamped := clampFloat(value, s.min, s.max)
	n := int64(roundNearest((clamped - s.mid()) * s.denom() / s.halfRange()))
	lo := -(int64(1) << uint(8*s.length-1))
	hi := int64(s.denom())
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}

func (s *sflintCodec) decode(n int64) float64 {
	return s.mid() + (float64(n)/s.denom())*s.halfRange()
}

type sflintHooks struct{ c *sflintCodec }

func (h *sflintHooks) typeTag() TypeTag { return TagSFLINT }
func (h *sflintHooks) description() string {
	return "SFLINT (linear-mapped signed integer, [" +
		fmtFloat(h.c.min, 'g', -1, 64) + ", " + fmtFloat(h.c.max, 'g', -1, 64) + "])"
}

func (h *sflintHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length > maxIntWidth {
		return DynamicValue{}, errorUnsupportedIntWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	n := beWidthToSint(b)
	return typedFloat(TagSFLINT, h.c.decode(n), length), nil
}

func (h *sflintHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	if h.c.strict && (f.Value < h.c.min || f.Value > h.c.max) {
		return errorOutOfRange(f.Value, h.c.min, h.c.max)
	}
	return c.Write(sintToBEWidth(h.c.encode(f.Value), need), need)
}

func (h *sflintHooks) lengthOfTyped(v DynamicValue) (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return f.Length, nil
}

func (h *sflintHooks) printTyped(v DynamicValue) string {
	f, err := v.Float()
	if err != nil {
		return ""
	}
	return fmtFloat(f.Value, 'g', mappedPrintDigits(8*f.Length), 64)
}

/*
NewSFLINTFormat returns a [Format] for an SFLINT(min, max, length)
primitive. length is fixed at construction time; min must be < max. If
strict is true, encoding a value outside [min, max] fails with
[OutOfRange] instead of clamping (§7's default-is-clamp policy).
*/
func NewSFLINTFormat(min, max float64, length int, strict bool) (Format, error) {
	if !(min < max) {
		return nil, errorClosedRange(min, max)
	}
	return newGenericFormat("SFLINT", length, &sflintHooks{c: &sflintCodec{min: min, max: max, length: length, strict: strict}}), nil
}

/*
NewMappedFloat wraps f as a [DynamicValue] for writing through a
UFLINT or SFLINT format. length must match the format's configured
width.
*/
func NewMappedFloat(tag TypeTag, f float64, length int) DynamicValue { return typedFloat(tag, f, length) }
