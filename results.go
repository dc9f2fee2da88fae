package tide

import (
	common "github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error response from the cheap validation run
// of a transaction.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is a human readable success message.
	Log string

	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64

	// GasPayment is the total fees for this tx (or other source of
	// payment).
	GasPayment int64
}

// DeliverResult captures any non-error response from the state-mutating
// execution of a transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity.
	Data []byte

	// Log is a human readable success message.
	Log string

	// Tags enable indexing transactions by the emitted attributes.
	Tags []common.KVPair

	// GasUsed is the units of work performed.
	GasUsed int64
}

// Pair constructs a tag attribute for a DeliverResult.
func Pair(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}
