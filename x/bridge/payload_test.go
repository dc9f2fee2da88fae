package bridge

import (
	"bytes"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	for _, rate := range []uint64{0, 1, 50000000000, 1 << 63} {
		raw := EncodePayload(rate)
		if len(raw) != payloadSize {
			t.Fatalf("payload of %d bytes", len(raw))
		}
		got, err := DecodePayload(raw)
		if err != nil {
			t.Fatalf("decode: %+v", err)
		}
		if got != rate {
			t.Fatalf("want %d, got %d", rate, got)
		}
	}
}

func TestPayloadIsBigEndian(t *testing.T) {
	raw := EncodePayload(1)
	want := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	if !bytes.Equal(raw, want) {
		t.Fatalf("unexpected wire format: %x", raw)
	}
}

func TestDecodeMalformedPayload(t *testing.T) {
	for _, raw := range [][]byte{
		nil,
		{},
		{1, 2, 3},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	} {
		if _, err := DecodePayload(raw); !ErrMalformedPayload.Is(err) {
			t.Fatalf("want ErrMalformedPayload for %x, got %+v", raw, err)
		}
	}
}
