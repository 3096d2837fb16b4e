package klv

/*
format.go implements the polymorphic format capability described in
§4.1 of the codec design: a single generic wrapper enforces length
checks, empty/unparsed handling and post-write length reconciliation
once, in terms of three small per-type hooks supplied by each
concrete format in its own file (blob.go, bigendian.go, berlen.go,
...). This replaces the teacher package's
per-type codec structs (e.g. int.go's integerCodec[T], real.go's
realCodec[T]) with a plain capability set: KLV formats are values, not
parameterized codecs over arbitrary Go aliases, because every KLV
primitive maps onto exactly one Go representation (§3).
*/

/*
Format is the capability every concrete KLV format (Blob, String,
UInt, SInt, BER, BER-OID, Float, UFLINT, SFLINT, IMAP, UUID) supplies.
It is the single authority for the three quantities a caller cares
about: on-wire bytes, typed value, and byte count (§2).
*/
type Format interface {
	// Read consumes exactly length bytes from c and returns the
	// decoded value. length == 0 yields Empty without touching c.
	Read(c *Cursor, length int) (DynamicValue, error)

	// Write emits v to c, advancing c by exactly LengthOf(v). It
	// fails with Overflow if that would exceed maxLength.
	Write(v DynamicValue, c *Cursor, maxLength int) error

	// LengthOf returns the on-wire byte count v would occupy.
	LengthOf(v DynamicValue) (int, error)

	// FixedLength returns the format's fixed byte width, or 0 if the
	// format is variable-length.
	FixedLength() int

	// TypeTag identifies the primitive kind this format produces.
	TypeTag() TypeTag

	// Print renders v for diagnostics.
	Print(v DynamicValue) string

	// Description returns a human-readable schema description.
	Description() string
}

/*
typedHooks is the private contract each concrete format implements.
genericFormat implements [Format] in terms of these three typed
hooks plus typeTag and description, all mandatory; printTyped
(see printerHooks) is the one optional hook.
*/
type typedHooks interface {
	// readTyped decodes exactly length bytes starting at c's current
	// position and MUST advance c by exactly length on success.
	readTyped(c *Cursor, length int) (DynamicValue, error)

	// writeTyped emits v to c and MUST advance c by exactly need
	// bytes, where need == lengthOfTyped(v).
	writeTyped(v DynamicValue, c *Cursor, need int) error

	// lengthOfTyped computes the on-wire byte count for v under this
	// format. For fixed-length formats this is never consulted by
	// LengthOf (the wrapper uses the fixed width instead); LengthOf
	// is its only caller.
	lengthOfTyped(v DynamicValue) (int, error)

	typeTag() TypeTag
	description() string
}

/*
printerHooks is implemented by formats with sharper diagnostic output
than [DynamicValue.Display] (e.g. a UUID format rendering canonical
8-4-4-4-12 text, or a mapped-integer format choosing decimal
precision from its configured width).
*/
type printerHooks interface {
	printTyped(v DynamicValue) string
}

/*
genericFormat implements [Format] once for any typedHooks
implementation. fixedLength == 0 means variable-length.
*/
type genericFormat struct {
	hooks       typedHooks
	fixedLength int
	name        string
}

func newGenericFormat(name string, fixedLength int, hooks typedHooks) *genericFormat {
	return &genericFormat{hooks: hooks, fixedLength: fixedLength, name: name}
}

func (f *genericFormat) FixedLength() int   { return f.fixedLength }
func (f *genericFormat) TypeTag() TypeTag   { return f.hooks.typeTag() }
func (f *genericFormat) Description() string { return f.hooks.description() }

func (f *genericFormat) Read(c *Cursor, length int) (DynamicValue, error) {
	if length == 0 {
		return Empty(), nil
	}
	if c == nil {
		return Empty(), ErrNilCursor
	}
	if f.fixedLength != 0 && length != f.fixedLength {
		return Empty(), errorWrongLength(f.fixedLength, length)
	}

	start := c.Offset()
	v, err := f.hooks.readTyped(c, length)
	if err != nil {
		logParseFailure(f.name, length, err)
		c.SetOffset(start)
		blob, rerr := c.Read(length)
		if rerr != nil {
			return Empty(), rerr
		}
		return Unparsed(blob, length), nil
	}

	if delta := c.Offset() - start; delta != length {
		return Empty(), errorLengthMismatch(length, delta)
	}

	return v, nil
}

func (f *genericFormat) Write(v DynamicValue, c *Cursor, maxLength int) error {
	if c == nil {
		return ErrNilCursor
	}
	if v.IsEmpty() {
		return nil
	}
	if v.IsUnparsed() {
		blob, _ := v.Blob()
		if len(blob) > maxLength {
			return errorOverflow(len(blob), maxLength)
		}
		return c.Write(blob, maxLength)
	}

	need, err := f.LengthOf(v)
	if err != nil {
		return err
	}
	if need > maxLength {
		return errorOverflow(need, maxLength)
	}

	start := c.Offset()
	if err := f.hooks.writeTyped(v, c, need); err != nil {
		return err
	}
	if delta := c.Offset() - start; delta != need {
		return errorLengthMismatch(need, delta)
	}
	return nil
}

func (f *genericFormat) LengthOf(v DynamicValue) (int, error) {
	if v.IsEmpty() {
		return 0, nil
	}
	if v.IsUnparsed() {
		blob, _ := v.Blob()
		return len(blob), nil
	}
	if f.fixedLength != 0 {
		return f.fixedLength, nil
	}
	return f.hooks.lengthOfTyped(v)
}

func (f *genericFormat) Print(v DynamicValue) string {
	if p, ok := f.hooks.(printerHooks); ok && v.IsTyped() {
		if s := p.printTyped(v); s != "" {
			return s
		}
	}
	return v.Display()
}
