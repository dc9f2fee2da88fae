/*
Package bridge implements the cross domain transfer adapter.

An outbound transfer burns the value on this domain, snapshots the accrual
rate of the holder and emits a payload for the relay. An inbound transfer,
delivered by the relay, mints the value under the rate decoded from the
payload. Only the rate crosses the domain boundary. Amount and destination
are carried by the relay envelope.

No growth accrues while the value is in transit. Accrual resumes on the
remote domain from the moment of minting.
*/
package bridge
