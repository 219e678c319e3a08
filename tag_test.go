package asn1der

import (
	"bytes"
	"testing"
)

func TestEncodeTag_lowNumberForm(t *testing.T) {
	for idx, tc := range []struct {
		tag  Tag
		want []byte
	}{
		{NewPrimitiveUniversal(tagBoolean), []byte{0x01}},
		{NewTag(ClassContext, Constructed, 0), []byte{0xa0}},
	} {
		if got := encodeTag(tc.tag); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d]: % x, want % x", t.Name(), idx, got, tc.want)
		}
	}
}

func TestEncodeTag_highNumberForm(t *testing.T) {
	for idx, tc := range []struct {
		tag  Tag
		want []byte
	}{
		{NewTag(ClassUniversal, Constructed, 57), []byte{0x3f, 0x39}},
		{NewTag(ClassUniversal, Primitive, 128), []byte{0x1f, 0x80, 0x01}},
		{NewTag(ClassPrivate, Primitive, 198), []byte{0xdf, 0xc6, 0x01}},
	} {
		if got := encodeTag(tc.tag); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d]: % x, want % x", t.Name(), idx, got, tc.want)
		}
	}
}

func TestTag_roundtrip(t *testing.T) {
	for _, tag := range []Tag{
		NewPrimitiveUniversal(1),
		NewConstructedUniversal(30),
		NewTag(ClassContext, Primitive, 128),
		NewTag(ClassApplication, Constructed, 198),
	} {
		raw := encodeTag(tag)
		got, n, err := decodeTag(raw)
		if err != nil {
			t.Fatalf("decodeTag(%v) failed: %v", tag, err)
		}
		if n != len(raw) {
			t.Errorf("decodeTag(%v): consumed %d, want %d", tag, n, len(raw))
		}
		if got != tag {
			t.Errorf("decodeTag(%v): got %v", tag, got)
		}
	}
}

func TestDecodeTag_empty(t *testing.T) {
	if _, _, err := decodeTag(nil); err == nil {
		t.Fatal("expected error decoding an empty tag")
	} else if k, _ := KindOf(err); k != KindEmptyTag {
		t.Errorf("want KindEmptyTag, got %s", k)
	}
}

func TestDecodeTag_truncatedHighNumberForm(t *testing.T) {
	raw := []byte{0x1f, 0x80, 0x80}
	if _, _, err := decodeTag(raw); err == nil {
		t.Fatal("expected error decoding a truncated high-tag-number form")
	} else if k, _ := KindOf(err); k != KindNotEnoughTagOctets {
		t.Errorf("want KindNotEnoughTagOctets, got %s", k)
	}
}
