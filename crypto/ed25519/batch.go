package ed25519

import (
	"errors"
	"fmt"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/helix-ledger/helix/crypto"
)

var _ crypto.BatchVerifier = &BatchVerifier{}

// BatchVerifier implements batch verification for ed25519.
type BatchVerifier struct {
	*ed25519.BatchVerifier
}

func NewBatchVerifier() crypto.BatchVerifier {
	return &BatchVerifier{ed25519.NewBatchVerifier()}
}

func (b *BatchVerifier) Add(key crypto.PubKey, msg, signature []byte) error {
	pkEd, ok := key.(PubKey)
	if !ok {
		return errors.New("ed25519: pubkey is not ed25519")
	}

	// check that the signature is the correct length
	if len(signature) != SignatureSize {
		return errors.New("ed25519: invalid signature")
	}

	if l := len(pkEd); l != PubKeySize {
		return fmt.Errorf("ed25519: invalid public key size, expected %d, got %d", PubKeySize, l)
	}

	cachingVerifier.AddWithOptions(b.BatchVerifier, ed25519.PublicKey(pkEd), msg, signature, verifyOptions)

	return nil
}

func (b *BatchVerifier) Verify() (bool, []bool) {
	return b.BatchVerifier.Verify(crypto.CReader())
}
