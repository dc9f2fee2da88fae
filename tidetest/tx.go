package tidetest

import (
	"github.com/tideledger/tide"
	"github.com/tideledger/tide/errors"
)

// Tx is a mock implementing the tide.Tx interface. It carries a single
// message.
type Tx struct {
	// Msg is the message this transaction carries.
	Msg tide.Msg
	// Err is returned by any method call if set.
	Err error
}

var _ tide.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (tide.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal([]byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return errors.Wrap(errors.ErrHuman, "unmarshal is not implemented")
}
