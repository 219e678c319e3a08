package asn1der

/*
bitstring.go implements the ASN.1 BIT STRING primitive (spec §4.4): a
leading octet counting the unused bits in the final content octet,
followed by the content octets themselves.
*/

/*
BitString is the ASN.1 BIT STRING primitive. Bytes holds the content
octets; Unused is the count, 0-7, of low-order bits in the final byte
of Bytes that do not belong to the value.
*/
type BitString struct {
	Bytes  []byte
	Unused uint8
}

/*
NewBitString returns a [BitString] over a copy of b, masking off the
unused low-order bits of the final byte so the value is always in its
canonical form. unused must be in 0-7; an out-of-range or otherwise
inconsistent count (no final byte to mask when unused != 0) reports
[KindConstraint].
*/
func NewBitString(b []byte, unused uint8) (BitString, error) {
	if unused > 7 {
		return BitString{}, errConstraint("BIT STRING: unused bit count must be 0-7")
	}
	if len(b) == 0 && unused != 0 {
		return BitString{}, errConstraint("BIT STRING: empty value must declare 0 unused bits")
	}

	out := make([]byte, len(b))
	copy(out, b)
	if len(out) > 0 && unused > 0 {
		mask := byte(0xff) << unused
		out[len(out)-1] &= mask
	}
	return BitString{Bytes: out, Unused: unused}, nil
}

func (BitString) Tag() Tag { return NewPrimitiveUniversal(tagBitString) }

func (b BitString) EncodeValue() []byte {
	out := make([]byte, 0, 1+len(b.Bytes))
	out = append(out, b.Unused)
	out = append(out, b.Bytes...)
	return out
}

/*
DecodeValue decodes raw into the receiver. An empty value fails with
[KindNoDataForType]; an unused-bit count outside 0-7, or a nonzero
count on an otherwise empty content region, fails with
[KindImplementation]. The final content byte is masked by the unused
count on the way in, same as [NewBitString], so a non-canonical wire
value (stray set bits in the padding) still round-trips to the
canonical form.
*/
func (b *BitString) DecodeValue(raw []byte) error {
	if len(raw) == 0 {
		return errNoDataForType()
	}
	unused := raw[0]
	if unused > 7 {
		return errImplementation("BIT STRING: unused bit count must be 0-7")
	}
	if len(raw) == 1 && unused != 0 {
		return errImplementation("BIT STRING: empty value must declare 0 unused bits")
	}

	content := make([]byte, len(raw)-1)
	copy(content, raw[1:])
	if len(content) > 0 && unused > 0 {
		content[len(content)-1] &= byte(0xff) << unused
	}
	b.Bytes = content
	b.Unused = unused
	return nil
}
