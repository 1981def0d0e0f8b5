// Package stores implements challenge-code persistence for the password
// reset and verification flows on top of the abstract key-value store.
//
// Records carry only a SHA-256 code hash, an expiry instant, and a failed
// attempt counter. The store enforces expiry and the attempt budget at
// consume time because the underlying key-value contract has no TTL.
package stores
