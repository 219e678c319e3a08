package asn1der

import "testing"

func TestIA5String_roundtrip(t *testing.T) {
	for idx, s := range []string{"", "hello, world", "user@example.com"} {
		ia, err := NewIA5String(s)
		if err != nil {
			t.Fatalf("%s[%d] construction failed: %v", t.Name(), idx, err)
		}
		enc := Encode(&ia)

		_, got, err := Decode[IA5String, *IA5String](enc)
		if err != nil {
			t.Fatalf("%s[%d] decode failed: %v", t.Name(), idx, err)
		}
		if string(got) != s {
			t.Errorf("%s[%d]: got %q, want %q", t.Name(), idx, got, s)
		}
	}
}

func TestIA5String_rejectsNonASCII(t *testing.T) {
	if _, err := NewIA5String("café"); err == nil {
		t.Fatal("expected error constructing from a non-ASCII string")
	} else if k, _ := KindOf(err); k != KindASCII {
		t.Errorf("want KindASCII, got %s", k)
	}

	var ia IA5String
	if err := ia.DecodeValue([]byte{0xc3, 0xa9}); err == nil {
		t.Fatal("expected error decoding a non-ASCII octet")
	} else if k, _ := KindOf(err); k != KindASCII {
		t.Errorf("want KindASCII, got %s", k)
	}
}
