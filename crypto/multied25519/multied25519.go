package multied25519

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/helix-ledger/helix/crypto"
	"github.com/helix-ledger/helix/crypto/ed25519"
)

const (
	KeyType = "multied25519"

	// MaxKeys is the maximum number of constituent public keys.
	MaxKeys = 32

	// BitmapSize is the byte length of the signer bitmap trailing a
	// multi-signature. Bit i (MSB-first) set means key i contributed a
	// signature.
	BitmapSize = 4
)

var (
	ErrNoKeys              = errors.New("multied25519: at least one constituent key required")
	ErrTooManyKeys         = fmt.Errorf("multied25519: at most %d constituent keys allowed", MaxKeys)
	ErrThresholdOutOfRange = errors.New("multied25519: threshold must be between 1 and the number of keys")
)

var _ crypto.PubKey = PubKey{}

// PubKey is a K-of-N threshold Ed25519 public key: an ordered set of
// constituent keys of which Threshold must sign to authorize an action.
//
// The order of PubKeys is significant: it is part of the key's canonical
// byte serialization and therefore of the derived address. Reordering the
// keys produces a different account.
type PubKey struct {
	PubKeys   []ed25519.PubKey
	Threshold uint8
}

// NewPubKey constructs a threshold public key from the constituent keys, in
// their declared order, and the required-signature threshold K. It requires
// 1 <= K <= len(pubKeys) <= MaxKeys and well-sized constituent keys.
func NewPubKey(pubKeys []ed25519.PubKey, threshold uint8) (PubKey, error) {
	if len(pubKeys) == 0 {
		return PubKey{}, ErrNoKeys
	}
	if len(pubKeys) > MaxKeys {
		return PubKey{}, ErrTooManyKeys
	}
	if threshold == 0 || int(threshold) > len(pubKeys) {
		return PubKey{}, ErrThresholdOutOfRange
	}
	for i, pk := range pubKeys {
		if len(pk) != ed25519.PubKeySize {
			return PubKey{}, fmt.Errorf("multied25519: constituent key %d has size %d, expected %d",
				i, len(pk), ed25519.PubKeySize)
		}
	}

	keys := make([]ed25519.PubKey, len(pubKeys))
	copy(keys, pubKeys)
	return PubKey{PubKeys: keys, Threshold: threshold}, nil
}

// FromBytes parses the canonical serialization produced by Bytes.
func FromBytes(bz []byte) (PubKey, error) {
	if len(bz) == 0 || (len(bz)-1)%ed25519.PubKeySize != 0 {
		return PubKey{}, fmt.Errorf("multied25519: invalid key length %d, expected 32n+1", len(bz))
	}

	n := (len(bz) - 1) / ed25519.PubKeySize
	keys := make([]ed25519.PubKey, n)
	for i := range keys {
		key := make(ed25519.PubKey, ed25519.PubKeySize)
		copy(key, bz[i*ed25519.PubKeySize:])
		keys[i] = key
	}
	return NewPubKey(keys, bz[len(bz)-1])
}

// Bytes returns the canonical serialization: the constituent keys
// concatenated in their declared order, followed by the threshold byte.
func (pubKey PubKey) Bytes() []byte {
	bz := make([]byte, 0, len(pubKey.PubKeys)*ed25519.PubKeySize+1)
	for _, pk := range pubKey.PubKeys {
		bz = append(bz, pk...)
	}
	return append(bz, pubKey.Threshold)
}

// AuthenticationKey derives the account authentication key for this key set:
// SHA3-256 over the canonical serialization with the MultiEd25519 scheme tag
// appended, i.e. SHA3-256(pub_1 || ... || pub_n || K || 0x01).
func (pubKey PubKey) AuthenticationKey() crypto.AuthenticationKey {
	return crypto.AuthenticationKeyFromPreimage(pubKey.Bytes(), crypto.AuthKeySchemeMultiEd25519)
}

// Address is the account address derived from the authentication key.
func (pubKey PubKey) Address() crypto.Address {
	return pubKey.AuthenticationKey().DerivedAddress()
}

// VerifySignature verifies a threshold multi-signature over msg.
//
// The signature layout is one 64-byte Ed25519 signature per participating
// key, in key order, followed by the 4-byte signer bitmap. The signature is
// valid when the bitmap names at least Threshold keys, every named key is in
// range, the signature count matches the bitmap, and every named key's
// signature verifies. Verification uses the batch verifier.
func (pubKey PubKey) VerifySignature(msg []byte, sig []byte) bool {
	if len(sig) < BitmapSize || (len(sig)-BitmapSize)%ed25519.SignatureSize != 0 {
		return false
	}

	nsigs := (len(sig) - BitmapSize) / ed25519.SignatureSize
	bitmap := binary.BigEndian.Uint32(sig[len(sig)-BitmapSize:])

	if bits.OnesCount32(bitmap) != nsigs {
		return false
	}
	if nsigs < int(pubKey.Threshold) {
		return false
	}

	verifier := ed25519.NewBatchVerifier()
	sigIdx := 0
	for i := 0; i < MaxKeys; i++ {
		if bitmap&(1<<uint(31-i)) == 0 {
			continue
		}
		if i >= len(pubKey.PubKeys) {
			return false
		}
		s := sig[sigIdx*ed25519.SignatureSize : (sigIdx+1)*ed25519.SignatureSize]
		if err := verifier.Add(pubKey.PubKeys[i], msg, s); err != nil {
			return false
		}
		sigIdx++
	}

	ok, _ := verifier.Verify()
	return ok
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyMultiEd25519{%X}", pubKey.Bytes())
}

func (pubKey PubKey) Type() string {
	return KeyType
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	otherMulti, ok := other.(PubKey)
	if !ok {
		return false
	}
	if pubKey.Threshold != otherMulti.Threshold || len(pubKey.PubKeys) != len(otherMulti.PubKeys) {
		return false
	}
	for i, pk := range pubKey.PubKeys {
		if !pk.Equals(otherMulti.PubKeys[i]) {
			return false
		}
	}
	return true
}
