package asn1der

import (
	"bytes"
	"testing"
)

func TestEncodeLength_shortForm(t *testing.T) {
	for idx, tc := range []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
	} {
		if got := encodeLength(tc.n); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d]: % x, want % x", t.Name(), idx, got, tc.want)
		}
	}
}

func TestEncodeLength_longForm(t *testing.T) {
	for idx, tc := range []struct {
		n    int
		want []byte
	}{
		{128, []byte{0x81, 0x80}},
		{255, []byte{0x81, 0xff}},
		{256, []byte{0x82, 0x01, 0x00}},
		{65535, []byte{0x82, 0xff, 0xff}},
	} {
		if got := encodeLength(tc.n); !bytes.Equal(got, tc.want) {
			t.Errorf("%s[%d]: % x, want % x", t.Name(), idx, got, tc.want)
		}
	}
}

func TestLength_roundtrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 255, 256, 65535, 1 << 20} {
		raw := encodeLength(n)
		got, consumed, err := decodeLength(raw)
		if err != nil {
			t.Fatalf("decodeLength(%d) failed: %v", n, err)
		}
		if consumed != len(raw) {
			t.Errorf("decodeLength(%d): consumed %d, want %d", n, consumed, len(raw))
		}
		if got != n {
			t.Errorf("decodeLength(%d): got %d", n, got)
		}
	}
}

func TestDecodeLength_empty(t *testing.T) {
	if _, _, err := decodeLength(nil); err == nil {
		t.Fatal("expected error decoding an empty length")
	} else if k, _ := KindOf(err); k != KindLengthEmpty {
		t.Errorf("want KindLengthEmpty, got %s", k)
	}
}

func TestDecodeLength_truncatedLongForm(t *testing.T) {
	raw := []byte{0x82, 0x01}
	if _, _, err := decodeLength(raw); err == nil {
		t.Fatal("expected error decoding a truncated long-form length")
	} else if k, _ := KindOf(err); k != KindNotEnoughLengthOctets {
		t.Errorf("want KindNotEnoughLengthOctets, got %s", k)
	}
}
