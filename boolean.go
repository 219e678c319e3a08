package asn1der

/*
boolean.go implements the ASN.1 BOOLEAN primitive (spec §4.4).
*/

/*
Boolean is the ASN.1 BOOLEAN primitive. The zero value is false.
*/
type Boolean bool

/*
NewBoolean returns a [Boolean] wrapping b. It exists alongside the
plain conversion `Boolean(b)` for symmetry with this package's other
NewXxx constructors.
*/
func NewBoolean(b bool) Boolean { return Boolean(b) }

func (Boolean) Tag() Tag { return NewPrimitiveUniversal(tagBoolean) }

/*
EncodeValue encodes the receiver per DER: 0x00 for false, 0xFF for
true.
*/
func (b Boolean) EncodeValue() []byte {
	if b {
		return []byte{0xff}
	}
	return []byte{0x00}
}

/*
DecodeValue decodes raw into the receiver. Any non-zero octet decodes
as true, matching BER/DER's permissive decode side even though this
package only emits 0x00/0xFF on encode. An empty value fails with
[KindNoDataForType].
*/
func (b *Boolean) DecodeValue(raw []byte) error {
	if len(raw) == 0 {
		return errNoDataForType()
	}
	*b = raw[0] != 0x00
	return nil
}
