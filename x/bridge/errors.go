package bridge

import (
	"github.com/tideledger/tide/errors"
)

var (
	// ErrUnknownDomain is returned when no remote domain is registered
	// under the requested identifier.
	ErrUnknownDomain = errors.Register(1010, "unknown remote domain")

	// ErrMalformedPayload is returned when an inbound payload cannot be
	// decoded. No mint happens in that case.
	ErrMalformedPayload = errors.Register(1011, "malformed payload")
)
