package bridge

import (
	"encoding/binary"

	"github.com/tideledger/tide/errors"
)

// payloadSize is the exact length of a transfer payload. The payload is a
// single fixed width unsigned integer carrying the accrual rate.
const payloadSize = 8

// EncodePayload serializes the accrual rate into the wire payload that the
// relay delivers to the paired adapter.
func EncodePayload(rate uint64) []byte {
	raw := make([]byte, payloadSize)
	binary.BigEndian.PutUint64(raw, rate)
	return raw
}

// DecodePayload deserializes the accrual rate from an inbound payload.
func DecodePayload(raw []byte) (uint64, error) {
	if len(raw) != payloadSize {
		return 0, errors.Wrapf(ErrMalformedPayload, "%d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
