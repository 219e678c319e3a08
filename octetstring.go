package asn1der

/*
octetstring.go implements the ASN.1 OCTET STRING primitive (spec §4.4):
an arbitrary byte sequence, with no constraint on its contents.
*/

/*
OctetString is the ASN.1 OCTET STRING primitive.
*/
type OctetString []byte

/*
NewOctetString returns an [OctetString] wrapping a copy of b.
*/
func NewOctetString(b []byte) OctetString {
	out := make(OctetString, len(b))
	copy(out, b)
	return out
}

func (OctetString) Tag() Tag { return NewPrimitiveUniversal(tagOctetString) }

func (o OctetString) EncodeValue() []byte {
	out := make([]byte, len(o))
	copy(out, o)
	return out
}

/*
DecodeValue decodes raw into the receiver. Any byte sequence, including
the empty one, is a valid OCTET STRING value.
*/
func (o *OctetString) DecodeValue(raw []byte) error {
	*o = make(OctetString, len(raw))
	copy(*o, raw)
	return nil
}
