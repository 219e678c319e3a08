package asn1der

/*
object.go implements the uniform codec contract shared by every ASN.1
type in this package (spec §4.3), and the default encode/decode
framing algorithm built atop it.

Rust's original trait (see original_source/red_asn1/src/traits.rs)
exposes Self::tag() as an associated function, so a decoder can build
a zero value, ask its type for the expected tag, and fill it in. Go
interfaces have no associated-function equivalent, so this package
expresses the same shape with a generic Decode[T] function constrained
on a pointer-typed method set: the pointer type supplies Tag,
EncodeValue and DecodeValue, and the function itself supplies the
"construct a zero value of T" step that Rust's Default bound gave the
trait for free.
*/

/*
Object is the contract every supported ASN.1 type satisfies. Tag
reports the type's canonical tag (spec's "tag() becomes a type-level
function" redesign note: for every built-in type here, Tag ignores
receiver state and returns a constant — it is only a method, rather
than a package-level function, because Go cannot otherwise attach it
to a type parameter). EncodeValue produces the type's value octets.
DecodeValue consumes exactly the value octets handed to it by the
framing algorithm below.
*/
type Object interface {
	Tag() Tag
	EncodeValue() []byte
	DecodeValue(raw []byte) error
}

/*
Encode applies the shared framing algorithm to x: tag octets, then
length octets, then the value octets x.EncodeValue() produced. An
absent [Optional] encodes as zero octets, with no tag or length.
*/
func Encode(x Object) []byte {
	if ac, ok := x.(absentChecker); ok && ac.isAbsent() {
		return nil
	}
	debugTrace("Encode", "enter", x.Tag())
	value := x.EncodeValue()
	out := make([]byte, 0, 2+len(value))
	out = append(out, encodeTag(x.Tag())...)
	out = append(out, encodeLength(len(value))...)
	out = append(out, value...)
	debugTrace("Encode", "exit", len(out))
	return out
}

/*
PointerTo constrains a type parameter pair so that generic decode
helpers can both name the value type T and require that *T implement
[Object].
*/
type PointerTo[T any] interface {
	*T
	Object
}

/*
Decode decodes a value of type T from the start of raw, applying the
shared framing algorithm: read the tag, confirm it matches (PT)(new
T)'s canonical tag, read the length, and hand exactly that many value
octets to DecodeValue.

It returns the number of octets consumed and the decoded value. A tag
mismatch fails with [KindUnmatchedTag], carrying whatever [Class] was
actually found in raw (spec §4.3).
*/
func Decode[T any, PT PointerTo[T]](raw []byte) (int, T, error) {
	var zero T
	pt := PT(&zero)
	consumed, err := decodeObject(pt, raw)
	if err != nil {
		return 0, zero, err
	}
	return consumed, zero, nil
}

/*
decodeObject applies the shared framing algorithm to an already-built
Object, rather than a zero value constructed from a type parameter. It
exists so sequence.go's reflection-driven field loop — which discovers
each field's Object at runtime and cannot name it as a type parameter —
can reuse the same tag/length/value framing as [Decode].

The error returned for a tag mismatch carries the Class actually found
in raw, not the Object's expected class, so callers can distinguish a
different class entirely (a strong "keep scanning" signal) from a
same-class, wrong-number mismatch.
*/
func decodeObject(obj Object, raw []byte) (int, error) {
	debugTrace("decodeObject", "enter", obj.Tag(), len(raw))
	tag, consumed, err := decodeTag(raw)
	if err != nil {
		debugTrace("decodeObject", "tag error, recoverable boundary", err)
		return 0, err
	}
	if tag != obj.Tag() {
		debugTrace("decodeObject", "tag mismatch, recoverable boundary", tag, obj.Tag())
		return 0, errUnmatchedTag(tag.Class)
	}

	length, n, err := decodeLength(raw[consumed:])
	if err != nil {
		return 0, err
	}
	consumed += n

	if length > len(raw[consumed:]) {
		return 0, errNoDataForLength()
	}

	if err := obj.DecodeValue(raw[consumed : consumed+length]); err != nil {
		return 0, err
	}
	consumed += length

	debugTrace("decodeObject", "exit", consumed)
	return consumed, nil
}
