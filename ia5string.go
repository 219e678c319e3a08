package asn1der

/*
ia5string.go implements the ASN.1 IA5String primitive (spec §4.4):
text restricted to the IA5 (7-bit ASCII) repertoire.
*/

/*
IA5String is the ASN.1 IA5String primitive, held as a Go string and
required to contain only octets in 0x00-0x7F.
*/
type IA5String string

/*
NewIA5String returns an [IA5String] wrapping s, or an error if s
contains a byte outside the 7-bit ASCII range.
*/
func NewIA5String(s string) (IA5String, error) {
	if !isASCII(s) {
		return "", errASCII()
	}
	return IA5String(s), nil
}

func (IA5String) Tag() Tag { return NewPrimitiveUniversal(tagIA5String) }

func (i IA5String) EncodeValue() []byte { return []byte(i) }

/*
DecodeValue decodes raw into the receiver. A byte outside 7-bit ASCII
fails with [KindASCII].
*/
func (i *IA5String) DecodeValue(raw []byte) error {
	for _, c := range raw {
		if c > 0x7f {
			return errASCII()
		}
	}
	*i = IA5String(raw)
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
