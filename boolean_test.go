package asn1der

import "testing"

func TestBoolean_roundtrip(t *testing.T) {
	for idx, tc := range []bool{true, false} {
		b := NewBoolean(tc)
		enc := Encode(&b)

		_, got, err := Decode[Boolean, *Boolean](enc)
		if err != nil {
			t.Fatalf("%s[%d] decode failed: %v", t.Name(), idx, err)
		}
		if got != b {
			t.Errorf("%s[%d]: want %t, got %t", t.Name(), idx, b, got)
		}
	}
}

func TestBoolean_encoding(t *testing.T) {
	if got := NewBoolean(true).EncodeValue(); len(got) != 1 || got[0] != 0xff {
		t.Errorf("true must encode as 0xFF, got %x", got)
	}
	if got := NewBoolean(false).EncodeValue(); len(got) != 1 || got[0] != 0x00 {
		t.Errorf("false must encode as 0x00, got %x", got)
	}
}

func TestBoolean_decodeEmpty(t *testing.T) {
	var b Boolean
	if err := b.DecodeValue(nil); err == nil {
		t.Fatal("expected error decoding empty BOOLEAN value")
	} else if k, _ := KindOf(err); k != KindNoDataForType {
		t.Errorf("want KindNoDataForType, got %s", k)
	}
}

func TestBoolean_decodeNonzero(t *testing.T) {
	var b Boolean
	if err := b.DecodeValue([]byte{0x01}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b {
		t.Error("any nonzero octet must decode to true")
	}
}
