package klv

/*
blob.go implements the opaque Blob primitive codec (§4.2) and its
concrete format (§4.3): exactly the announced length, bytes untouched.
This is the simplest descendant of the teacher package's OctetString
(oct.go) — an uninterpreted byte payload — trimmed to drop ASN.1's
constraint-group/spec-phase machinery, since a KLV blob carries no
schema beyond its own byte count.
*/

type blobHooks struct{}

func (blobHooks) typeTag() TypeTag   { return TagBlob }
func (blobHooks) description() string { return "BLOB (opaque, exact length)" }

func (blobHooks) readTyped(c *Cursor, length int) (DynamicValue, error) {
	b, err := c.Read(length)
	if err != nil {
		return DynamicValue{}, err
	}
	return typedBlob(b, length), nil
}

func (blobHooks) writeTyped(v DynamicValue, c *Cursor, need int) error {
	b, err := v.Blob()
	if err != nil {
		return err
	}
	return c.Write(b, need)
}

func (blobHooks) lengthOfTyped(v DynamicValue) (int, error) {
	b, err := v.Blob()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

/*
NewBlobFormat returns a [Format] for the KLV Blob primitive.
fixedLength == 0 selects variable length (the announced length at
read time, or the value's own byte count at write time).
*/
func NewBlobFormat(fixedLength int) Format { return newGenericFormat("Blob", fixedLength, blobHooks{}) }

/*
NewBlob wraps b as a [DynamicValue] for writing through a Blob format.
*/
func NewBlob(b []byte) DynamicValue { return typedBlob(b, len(b)) }
