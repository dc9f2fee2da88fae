/*
Package tide defines all common interfaces that tie the various
subpackages of this repository together.

Tide is a value ledger whose balances grow with elapsed time. Every
holder account carries a personal accrual rate and the ledger computes
time-extended balances lazily on read, so no operation ever has to
iterate over all holders. The x/bridge extension moves accruing value
between independent execution domains by burning principal on the
source domain and minting it on the destination under the exported
rate.

The root package holds the shared building blocks: addresses and
conditions, the KVStore interfaces, transaction and message contracts,
handler and decorator interfaces, and context helpers carrying block
time, chain id and logger down the handler stack.
*/
package tide
