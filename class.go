package asn1der

/*
class.go implements the ASN.1 tag class enumeration. See tag.go for
the full [Tag] triple this class participates in.
*/

/*
Class identifies one of the four ASN.1 tag classes. The zero value is
[ClassUniversal].
*/
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

var classNames = [...]string{
	ClassUniversal:   "Universal",
	ClassApplication: "Application",
	ClassContext:     "Context",
	ClassPrivate:     "Private",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Unknown"
}
