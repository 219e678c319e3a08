package asn1der

/*
errors.go implements the closed error taxonomy shared by every codec
in this package. Errors are values, never exceptions: every fallible
operation in this package returns one through its own error return.
The one exception is building a SEQUENCE schema (sequence.go): a
Strict-mode field that does not implement [Object] panics, and so does
encoding a SEQUENCE whose schema is invalid, since encoding has no
error return.
*/

import "strconv"

/*
Kind enumerates the distinguishable failure modes this package can
report. A [Kind] never carries data itself; any data associated with a
particular failure (an offending [Class], a wrapped inner error, a
free-form message) lives on the enclosing [Error].
*/
type Kind uint8

const (
	KindEmptyTag Kind = iota
	KindNotEnoughTagOctets
	KindUnmatchedTag
	KindLengthEmpty
	KindNotEnoughLengthOctets
	KindNoValue
	KindNoComponent
	KindNoDataForLength
	KindNoDataForType
	KindNoAllDataConsumed
	KindUTF8
	KindASCII
	KindParseInt
	KindImplementation
	KindConstraint
	KindUnknownAttribute
	KindInvalidTagNumberValue
	KindNotStruct
	KindSequenceField
	KindSequence
)

var kindNames = map[Kind]string{
	KindEmptyTag:              "EmptyTag",
	KindNotEnoughTagOctets:    "NotEnoughTagOctets",
	KindUnmatchedTag:          "UnmatchedTag",
	KindLengthEmpty:           "LengthEmpty",
	KindNotEnoughLengthOctets: "NotEnoughLengthOctets",
	KindNoValue:               "NoValue",
	KindNoComponent:           "NoComponent",
	KindNoDataForLength:       "NoDataForLength",
	KindNoDataForType:         "NoDataForType",
	KindNoAllDataConsumed:     "NoAllDataConsumed",
	KindUTF8:                  "Utf8Error",
	KindASCII:                 "AsciiError",
	KindParseInt:              "ParseIntError",
	KindImplementation:        "ImplementationError",
	KindConstraint:            "ConstraintError",
	KindUnknownAttribute:      "UnknownAttribute",
	KindInvalidTagNumberValue: "InvalidTagNumberValue",
	KindNotStruct:             "NotStruct",
	KindSequenceField:         "SequenceFieldError",
	KindSequence:              "SequenceError",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownError"
}

/*
Error is the sole error type returned from this package. Its [Kind]
discriminates the failure; [Error.Class] is only meaningful for the
tag-related kinds; [Error.Msg] carries free text for
[KindImplementation], [KindConstraint], and the schema-validation
kinds [KindUnknownAttribute], [KindInvalidTagNumberValue] and
[KindNotStruct]; [Error.Inner], [Error.SeqName] and [Error.FieldName]
are only populated for the two nesting kinds, [KindSequenceField] and
[KindSequence].
*/
type Error struct {
	Kind      Kind
	Class     Class
	Msg       string
	SeqName   string
	FieldName string
	Inner     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyTag, KindNotEnoughTagOctets, KindUnmatchedTag:
		return e.Kind.String() + "(" + e.Class.String() + ")"
	case KindImplementation, KindConstraint, KindUnknownAttribute, KindInvalidTagNumberValue, KindNotStruct:
		return e.Kind.String() + ": " + e.Msg
	case KindSequenceField:
		return e.SeqName + "::" + e.FieldName + " => " + e.Inner.Error()
	case KindSequence:
		return e.SeqName + " => " + e.Inner.Error()
	default:
		return e.Kind.String()
	}
}

/*
Unwrap exposes the nested error so that [errors.Is] and [errors.As] can
walk a fault path produced by nested SEQUENCE decoding.
*/
func (e *Error) Unwrap() error { return e.Inner }

/*
Is reports whether target is an [*Error] with the same [Kind] and, for
the tag-related kinds, the same [Class]. It does not compare nested
state, so a caller can test "did decoding fail because of an unmatched
Context tag anywhere in the fault path" with:

	errors.Is(err, &Error{Kind: KindUnmatchedTag, Class: ClassContext})
*/
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	switch e.Kind {
	case KindEmptyTag, KindNotEnoughTagOctets, KindUnmatchedTag:
		return e.Class == t.Class
	}
	return true
}

func errEmptyTag(c Class) error           { return &Error{Kind: KindEmptyTag, Class: c} }
func errNotEnoughTagOctets(c Class) error { return &Error{Kind: KindNotEnoughTagOctets, Class: c} }
func errUnmatchedTag(c Class) error       { return &Error{Kind: KindUnmatchedTag, Class: c} }
func errLengthEmpty() error               { return &Error{Kind: KindLengthEmpty} }
func errNotEnoughLengthOctets() error     { return &Error{Kind: KindNotEnoughLengthOctets} }
func errNoValue() error                   { return &Error{Kind: KindNoValue} }
func errNoComponent() error               { return &Error{Kind: KindNoComponent} }
func errNoDataForLength() error           { return &Error{Kind: KindNoDataForLength} }
func errNoDataForType() error             { return &Error{Kind: KindNoDataForType} }
func errNoAllDataConsumed() error         { return &Error{Kind: KindNoAllDataConsumed} }
func errUTF8() error                      { return &Error{Kind: KindUTF8} }
func errASCII() error                     { return &Error{Kind: KindASCII} }
func errParseInt() error                  { return &Error{Kind: KindParseInt} }

func errImplementation(msg string) error {
	return &Error{Kind: KindImplementation, Msg: msg}
}

func errConstraint(msg string) error {
	return &Error{Kind: KindConstraint, Msg: msg}
}

/*
errUnknownAttribute reports an `asn1` struct-tag token the code
generator's schema builder (spec §4.6's attribute-surface rule "any
other key is rejected") does not recognize.
*/
func errUnknownAttribute(msg string) error {
	return &Error{Kind: KindUnknownAttribute, Msg: msg}
}

/*
errInvalidTagNumberValue reports a `tag=` token whose literal is not a
valid 0..=255 non-negative integer.
*/
func errInvalidTagNumberValue(msg string) error {
	return &Error{Kind: KindInvalidTagNumberValue, Msg: msg}
}

/*
errNotStruct reports a [Sequence] type parameter that is not itself a
struct, so the schema builder has no fields to walk.
*/
func errNotStruct(msg string) error {
	return &Error{Kind: KindNotStruct, Msg: msg}
}

/*
WrapField returns an [*Error] of [KindSequenceField], attributing inner
to field fieldName of the SEQUENCE named seqName. This is the only
place a field-scoped decode or encode failure is surfaced to a caller.
*/
func WrapField(seqName, fieldName string, inner error) error {
	return &Error{Kind: KindSequenceField, SeqName: seqName, FieldName: fieldName, Inner: inner}
}

/*
WrapSequence returns an [*Error] of [KindSequence], attributing inner
to the frame (tag, length, or residual-byte) handling of the SEQUENCE
named seqName.
*/
func WrapSequence(seqName string, inner error) error {
	return &Error{Kind: KindSequence, SeqName: seqName, Inner: inner}
}

/*
AsError reports whether err is (or wraps) an [*Error], returning it if
so. This is a thin convenience wrapper over [errors.As].
*/
func AsError(err error) (*Error, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return nil, false
}

/*
KindOf returns the outermost [Kind] of err, or false if err is not (or
does not wrap) an [*Error].
*/
func KindOf(err error) (Kind, bool) {
	e, ok := AsError(err)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}

/*
itoa is retained under this name, matching the alias convention this
package's core files use for frequently invoked stdlib functions.
*/
func itoa(i int) string { return strconv.Itoa(i) }
