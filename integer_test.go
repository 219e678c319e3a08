package asn1der

import (
	"bytes"
	"math/big"
	"testing"
)

func TestInteger_encodeVectors(t *testing.T) {
	for idx, tc := range []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{256, []byte{0x01, 0x00}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
	} {
		got := NewInteger(tc.v).EncodeValue()
		if !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d]: Integer(%d) = % x, want % x", t.Name(), idx, tc.v, got, tc.want)
		}
	}
}

func TestInteger_roundtrip(t *testing.T) {
	for idx, v := range []int64{0, 1, -1, 127, 128, 256, -128, -129, 4165284616, -3310595109} {
		i := NewInteger(v)
		enc := Encode(&i)

		_, got, err := Decode[Integer, *Integer](enc)
		if err != nil {
			t.Fatalf("%s[%d] decode failed: %v", t.Name(), idx, err)
		}
		if got.Int64() != v {
			t.Errorf("%s[%d]: want %d, got %s", t.Name(), idx, v, got)
		}
	}
}

func TestInteger_boundCheck(t *testing.T) {
	if _, err := NewIntegerFromBigInt(int128Max); err != nil {
		t.Errorf("max 128-bit value must be accepted: %v", err)
	}
	over := new(big.Int).Add(int128Max, big.NewInt(1))
	if _, err := NewIntegerFromBigInt(over); err == nil {
		t.Error("value exceeding 128-bit range must be rejected")
	} else if k, _ := KindOf(err); k != KindConstraint {
		t.Errorf("want KindConstraint, got %s", k)
	}
}

func TestInteger_decodeOversize(t *testing.T) {
	var i Integer
	raw := make([]byte, 17)
	if err := i.DecodeValue(raw); err == nil {
		t.Fatal("expected error decoding a 17-octet INTEGER value")
	} else if k, _ := KindOf(err); k != KindImplementation {
		t.Errorf("want KindImplementation, got %s", k)
	}
}
