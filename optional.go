package asn1der

/*
optional.go implements the Optional[T] wrapper of spec §4.4/§9's
"representing value possibly absent" redesign note: optionality lives
on the field, forwarded to the wrapped type, rather than as a type of
its own on the wire (see original_source/red_asn1's evolution from
SeqField<T> to Option<T>, and DESIGN.md's Open Question decision).
*/

/*
Optional wraps a field type T so a SEQUENCE field can hold "no value"
rather than always encoding a present T. Present reports whether Value
holds anything; Tag, EncodeValue and DecodeValue all forward to T
through PT, so an Optional[T] is indistinguishable on the wire from a
bare T when present, and contributes zero octets when absent (spec
§4.4's "encoding of None is the empty byte sequence").

A struct field of this type is automatically treated as optional by
the SEQUENCE schema builder (schemaFor), without needing the
`asn1:"...,optional"` tag token as well — though the token is still
accepted, and has no additional effect, for fields of this type.
*/
type Optional[T any, PT PointerTo[T]] struct {
	Value   T
	Present bool
}

/*
Some returns an Optional[T] holding v.
*/
func Some[T any, PT PointerTo[T]](v T) Optional[T, PT] {
	return Optional[T, PT]{Value: v, Present: true}
}

/*
None returns an absent Optional[T].
*/
func None[T any, PT PointerTo[T]]() Optional[T, PT] {
	return Optional[T, PT]{}
}

func (o Optional[T, PT]) Tag() Tag {
	var zero T
	return PT(&zero).Tag()
}

func (o Optional[T, PT]) EncodeValue() []byte {
	if !o.Present {
		return nil
	}
	v := o.Value
	return PT(&v).EncodeValue()
}

func (o *Optional[T, PT]) DecodeValue(raw []byte) error {
	if err := PT(&o.Value).DecodeValue(raw); err != nil {
		return err
	}
	o.Present = true
	return nil
}

func (o Optional[T, PT]) isAbsent() bool { return !o.Present }
