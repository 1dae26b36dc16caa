package crypto

import (
	hxbytes "github.com/helix-ledger/helix/libs/bytes"
)

// Address is the on-chain identity of an account. It is a byte-for-byte copy
// of the authentication key the account was created with; the two share the
// same width in the current protocol version.
type Address = hxbytes.HexBytes

type PubKey interface {
	Address() Address
	Bytes() []byte
	VerifySignature(msg []byte, sig []byte) bool
	Equals(PubKey) bool
	Type() string
}

type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) ([]byte, error)
	PubKey() PubKey
	Equals(PrivKey) bool
	Type() string
}

// BatchVerifier If a new key type implements batch verification,
// the key type must be registered in github.com/helix-ledger/helix/crypto/batch
type BatchVerifier interface {
	// Add appends an entry into the BatchVerifier.
	Add(key PubKey, message, signature []byte) error
	// Verify verifies all the entries in the BatchVerifier, and returns
	// if every signature in the batch is valid, and a vector of bools
	// indicating the verification status of each signature (in the order
	// that signatures were added to the batch).
	Verify() (bool, []bool)
}
