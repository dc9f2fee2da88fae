package bech32

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0xff, 0x00, 0xaa, 0x1e, 0x44,
		0x01, 0x02, 0x03, 0xff, 0x00, 0xaa, 0x1e, 0x44, 0xde, 0xad, 0xbe, 0xef}

	enc, err := Encode("tide", payload)
	if err != nil {
		t.Fatalf("encode: %+v", err)
	}
	hrp, dec, err := Decode(string(enc))
	if err != nil {
		t.Fatalf("decode: %+v", err)
	}
	if hrp != "tide" {
		t.Fatalf("want hrp %q, got %q", "tide", hrp)
	}
	if !bytes.Equal(payload, dec) {
		t.Fatalf("payload corrupted: %X != %X", payload, dec)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("not a bech32 string"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
