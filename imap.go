package klv

import "math"

/*
imap.go implements the ST 1201 IMAP non-linear mapping primitive codec
(§4.2) and its concrete format (§4.3). There is no teacher or pack
precedent for this mapping (it has no ASN.1 analogue, and
original_source/ retrieved nothing to resolve the reserved-code layout
against); the reserved-code placement below is this package's own
resolution of that gap, recorded as an Open Question answer in
DESIGN.md, built the same way fixedpoint.go structures a configured
codec (uflintCodec/sflintCodec) — a small unexported
struct capturing the configured range and width, with encode/decode
methods the hooks call into.
*/

/*
imapCodec holds the configured range and width shared by an IMAP
format's read/write/length hooks. The signed code space
[-2^(8L-1), 2^(8L-1)-1] reserves its top three and bottom two codes
for the special values named in §4.2; every other code maps linearly
over [min, max].
*/
type imapCodec struct {
	min, max float64
	length   int
}

func (m *imapCodec) bits() int { return 8*m.length - 1 }

func (m *imapCodec) codeMax() int64 { return (int64(1) << uint(m.bits())) - 1 }
func (m *imapCodec) codeMin() int64 { return -(int64(1) << uint(m.bits())) }

// Reserved codes, from the top of the range down, then the bottom.
func (m *imapCodec) codePosInf() int64  { return m.codeMax() }
func (m *imapCodec) codeQNaN() int64    { return m.codeMax() - 1 }
func (m *imapCodec) codeSNaN() int64    { return m.codeMax() - 2 }
func (m *imapCodec) codeNegInf() int64  { return m.codeMin() }
func (m *imapCodec) codeOutRange() int64 { return m.codeMin() + 1 }

func (m *imapCodec) codeLow() int64  { return m.codeOutRange() + 1 }
func (m *imapCodec) codeHigh() int64 { return m.codeSNaN() - 1 }

func (m *imapCodec) step() float64 {
	exp := math.Ceil(math.Log2(m.max - m.min))
	return math.Pow(2, exp) / math.Pow(2, float64(m.bits()))
}

func isQuietNaN(bits uint64) bool { return bits&(1<<51) != 0 }

func signalingNaNBits(sign uint64) uint64 {
	// exponent all-1, quiet bit clear, one mantissa bit set so the
	// value is still a NaN rather than infinity.
	return sign<<63 | 0x7ff<<52 | 1
}

func (m *imapCodec) encode(value float64) int64 {
	switch {
	case math.IsInf(value, 1):
		return m.codePosInf()
	case math.IsInf(value, -1):
		return m.codeNegInf()
	case math.IsNaN(value):
		if isQuietNaN(math.Float64bits(value)) {
			return m.codeQNaN()
		}
		return m.codeSNaN()
	case value < m.min || value > m.max:
		return m.codeOutRange()
	}
	n := m.codeLow() + int64(math.RoundToEven((value-m.min)/m.step()))
	if n < m.codeLow() {
		n = m.codeLow()
	}
	if n > m.codeHigh() {
		n = m.codeHigh()
	}
	return n
}

func (m *imapCodec) decode(n int64) float64 {
	switch n {
	case m.codePosInf():
		return math.Inf(1)
	case m.codeNegInf():
		return math.Inf(-1)
	case m.codeQNaN():
		return math.NaN()
	case m.codeSNaN():
		return math.Float64frombits(signalingNaNBits(0))
	case m.codeOutRange():
		return math.NaN()
	}
	return m.min + float64(n-m.codeLow())*m.step()
}

type imapHooks struct{ c *imapCodec }

func (h *imapHooks) typeTag() TypeTag { return TagIMAP }
func (h *imapHooks) description() string {
	return "IMAP (ST 1201 non-linear mapping, [" +
		fmtFloat(h.c.min, 'g', -1, 64) + ", " + fmtFloat(h.c.max, 'g', -1, 64) + "])"
}

func (h *imapHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	if length > maxIntWidth {
		return DynamicValue{}, errorUnsupportedIntWidth(length)
	}
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	n := beWidthToSint(b)
	return typedFloat(TagIMAP, h.c.decode(n), length), nil
}

func (h *imapHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	f, err := v.Float()
	if err != nil {
		return err
	}
	return c.Write(sintToBEWidth(h.c.encode(f.Value), need), need)
}

func (h *imapHooks) lengthOfTyped(v DynamicValue) (int, error) {
	f, err := v.Float()
	if err != nil {
		return 0, err
	}
	return f.Length, nil
}

func (h *imapHooks) printTyped(v DynamicValue) string {
	f, err := v.Float()
	if err != nil {
		return ""
	}
	return fmtFloat(f.Value, 'g', mappedPrintDigits(8*f.Length-1), 64)
}

/*
NewIMAPFormat returns a [Format] for an IMAP(min, max, length)
primitive. length is fixed at construction time; min must be < max.
*/
func NewIMAPFormat(min, max float64, length int) (Format, error) {
	if !(min < max) {
		return nil, errorClosedRange(min, max)
	}
	return newGenericFormat("IMAP", length, &imapHooks{c: &imapCodec{min: min, max: max, length: length}}), nil
}
