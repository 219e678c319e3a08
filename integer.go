package asn1der

/*
integer.go implements the ASN.1 INTEGER primitive (spec §4.4), bounded
to 128 bits per spec §1's Non-goals. DER requires the minimum-length
two's-complement representation; see encodeTwosComplement/
decodeTwosComplement below for the exact minimality rule, which this
package's round-trip and "Integer canonicity" properties (spec §8)
depend on.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

var (
	int128Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	int128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

/*
Integer is the ASN.1 INTEGER primitive, bounded to the signed 128-bit
range [-2^127, 2^127-1]. The zero value represents 0.
*/
type Integer struct {
	v *big.Int
}

/*
NewInteger returns an [Integer] built from any native Go signed
integer type. Every such type already fits within the 128-bit bound,
so this constructor cannot fail — unlike [NewIntegerFromBigInt], which
must validate an arbitrary-precision input.
*/
func NewInteger[T constraints.Signed](x T) Integer {
	return Integer{v: big.NewInt(int64(x))}
}

/*
NewIntegerFromBigInt returns an [Integer] wrapping a copy of x,
alongside an error if x falls outside the signed 128-bit range.
*/
func NewIntegerFromBigInt(x *big.Int) (Integer, error) {
	if x.Cmp(int128Min) < 0 || x.Cmp(int128Max) > 0 {
		return Integer{}, errConstraint("INTEGER: value exceeds 128-bit signed range")
	}
	return Integer{v: new(big.Int).Set(x)}, nil
}

/*
BigInt returns a copy of the receiver's value as a [*big.Int].
*/
func (i Integer) BigInt() *big.Int {
	if i.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(i.v)
}

/*
Int64 returns the receiver's value truncated to an int64, matching
[math/big.Int.Int64]'s truncation behavior for values outside that
range.
*/
func (i Integer) Int64() int64 { return i.BigInt().Int64() }

func (i Integer) String() string { return i.BigInt().String() }

func (Integer) Tag() Tag { return NewPrimitiveUniversal(tagInteger) }

func (i Integer) EncodeValue() []byte { return encodeTwosComplement(i.BigInt()) }

/*
DecodeValue decodes raw into the receiver. An empty value fails with
[KindNoDataForType]; a value longer than 16 octets (128 bits) fails
with [KindImplementation], matching spec §4.4's integer size limit.
*/
func (i *Integer) DecodeValue(raw []byte) error {
	if len(raw) == 0 {
		return errNoDataForType()
	}
	if len(raw) > 16 {
		return errImplementation("INTEGER: value exceeds 128-bit bound")
	}
	i.v = decodeTwosComplement(raw)
	return nil
}

/*
encodeTwosComplement returns the minimum-length two's-complement
big-endian encoding of v: no leading 0x00 that could be dropped
without changing sign, and no leading 0xFF followed by a byte whose
high bit is set that could likewise be dropped.
*/
func encodeTwosComplement(v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	default:
		abs := new(big.Int).Neg(v)
		bits := abs.BitLen()
		pow2 := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if pow2.Cmp(abs) != 0 {
			bits++
		}
		nbytes := (bits + 7) / 8
		if nbytes == 0 {
			nbytes = 1
		}
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*nbytes))
		tc := new(big.Int).Add(mod, v)
		b := tc.Bytes()
		for len(b) < nbytes {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
}

/*
decodeTwosComplement interprets raw as a big-endian two's-complement
integer, sign-extending from its high bit.
*/
func decodeTwosComplement(raw []byte) *big.Int {
	v := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(raw)))
		v.Sub(v, mod)
	}
	return v
}
