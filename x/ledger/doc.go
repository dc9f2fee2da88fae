/*
Package ledger implements a value accrual ledger.

Balances grow with elapsed time. Instead of touching every account each
block, an account stores the principal from its last settlement together
with a personal accrual rate and the settlement time. The current balance
is computed on read. Every mutation settles the pending growth into the
principal first, so the rate that was in effect until now is fully
captured before the principal changes.

Growth between settlements is linear. Compounding happens only across
settlement events, because each settlement folds the accrued growth into
the principal.
*/
package ledger
