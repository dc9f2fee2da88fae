/*
Package exchange declares the contract of the base asset wrapper.

The wrapper converts a base asset deposit into a ledger mint at the
current default rate and a ledger burn back into a base asset payout. The
wrapper itself lives outside of this repository. It is registered as a
ledger minter and consumes the ledger controller.
*/
package exchange
