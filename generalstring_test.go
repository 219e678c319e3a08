package asn1der

import "testing"

func TestGeneralString_roundtrip(t *testing.T) {
	for idx, s := range []string{"", "hello", "café", "日本語"} {
		gs, err := NewGeneralString(s)
		if err != nil {
			t.Fatalf("%s[%d] construction failed: %v", t.Name(), idx, err)
		}
		enc := Encode(&gs)

		_, got, err := Decode[GeneralString, *GeneralString](enc)
		if err != nil {
			t.Fatalf("%s[%d] decode failed: %v", t.Name(), idx, err)
		}
		if string(got) != s {
			t.Errorf("%s[%d]: got %q, want %q", t.Name(), idx, got, s)
		}
	}
}

func TestGeneralString_invalidUTF8(t *testing.T) {
	if _, err := NewGeneralString(string([]byte{0xff, 0xfe})); err == nil {
		t.Fatal("expected error constructing from invalid UTF-8")
	} else if k, _ := KindOf(err); k != KindUTF8 {
		t.Errorf("want KindUTF8, got %s", k)
	}

	var gs GeneralString
	if err := gs.DecodeValue([]byte{0xff, 0xfe}); err == nil {
		t.Fatal("expected error decoding invalid UTF-8")
	} else if k, _ := KindOf(err); k != KindUTF8 {
		t.Errorf("want KindUTF8, got %s", k)
	}
}
