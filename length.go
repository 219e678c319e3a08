package asn1der

/*
length.go implements the DER length-octet codec described in spec
§4.2: short form for values under 128, minimum-octet long form
otherwise.
*/

/*
encodeLength returns the DER length octets for n.
*/
func encodeLength(n int) []byte {
	debugTrace("encodeLength", "enter", n)
	if n < 128 {
		out := []byte{byte(n)}
		debugTrace("encodeLength", "exit", out)
		return out
	}

	var rev []byte
	v := n
	for v > 0 {
		rev = append(rev, byte(v))
		v >>= 8
	}

	out := make([]byte, 0, len(rev)+1)
	out = append(out, 0x80|byte(len(rev)))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	debugTrace("encodeLength", "exit", out)
	return out
}

/*
decodeLength reads a DER length field from the start of raw, returning
the decoded value and the number of octets consumed.

An empty input yields [KindLengthEmpty]. In the long form, the header
octet's low seven bits declare how many further octets encode the
length; if that count is not strictly less than the remaining input,
[KindNotEnoughLengthOctets] is raised (spec §4.2's "a length long-form
header declaring n additional octets must be followed by at least n
octets still inside the length field" invariant, checked here against
the whole remaining buffer — it is the caller's job, in object.go, to
additionally confirm the declared length fits the value region).
*/
func decodeLength(raw []byte) (int, int, error) {
	debugTrace("decodeLength", "enter", len(raw))
	if len(raw) == 0 {
		return 0, 0, errLengthEmpty()
	}

	first := raw[0]
	if first&0x80 == 0 {
		debugTrace("decodeLength", "exit", int(first&0x7f), 1)
		return int(first & 0x7f), 1, nil
	}

	k := int(first & 0x7f)
	if k >= len(raw) {
		return 0, 0, errNotEnoughLengthOctets()
	}

	length := 0
	for i := 1; i <= k; i++ {
		length = (length << 8) | int(raw[i])
	}
	debugTrace("decodeLength", "exit", length, k+1)
	return length, k + 1, nil
}
