package asn1der

/*
generalstring.go implements the ASN.1 GeneralString primitive (spec
§4.4) as a UTF-8 string, matching this package's treatment of it as a
general-purpose text type rather than ISO 2022's full escape-sequence
repertoire.
*/

import "unicode/utf8"

/*
GeneralString is the ASN.1 GeneralString primitive, held as a Go
string and required to be valid UTF-8.
*/
type GeneralString string

/*
NewGeneralString returns a [GeneralString] wrapping s, or an error if s
is not valid UTF-8.
*/
func NewGeneralString(s string) (GeneralString, error) {
	if !utf8.ValidString(s) {
		return "", errUTF8()
	}
	return GeneralString(s), nil
}

func (GeneralString) Tag() Tag { return NewPrimitiveUniversal(tagGeneralString) }

func (g GeneralString) EncodeValue() []byte { return []byte(g) }

/*
DecodeValue decodes raw into the receiver. Invalid UTF-8 fails with
[KindUTF8].
*/
func (g *GeneralString) DecodeValue(raw []byte) error {
	if !utf8.Valid(raw) {
		return errUTF8()
	}
	*g = GeneralString(raw)
	return nil
}
