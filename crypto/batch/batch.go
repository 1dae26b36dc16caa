package batch

import (
	"github.com/helix-ledger/helix/crypto"
	"github.com/helix-ledger/helix/crypto/ed25519"
)

// CreateBatchVerifier checks if a key type implements the batch verifier
// interface. Currently only ed25519 supports batch verification; threshold
// multied25519 keys consume the ed25519 batch verifier internally and are not
// batched across messages themselves.
func CreateBatchVerifier(pk crypto.PubKey) (crypto.BatchVerifier, bool) {
	switch pk.Type() {
	case ed25519.KeyType:
		return ed25519.NewBatchVerifier(), true
	default:
		return nil, false
	}
}

// SupportsBatchVerifier checks if a key type implements the batch verifier
// interface.
func SupportsBatchVerifier(pk crypto.PubKey) bool {
	if pk == nil {
		return false
	}

	switch pk.Type() {
	case ed25519.KeyType:
		return true
	default:
		return false
	}
}
