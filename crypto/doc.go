// crypto is the identity-derivation package for Helix.
//
// Every account's on-chain address is computed deterministically from its
// public key material: the key bytes are hashed with a 1-byte scheme tag
// appended, giving a 32-byte authentication key, and the address is a
// byte-for-byte copy of that key. Because the address is derived from the
// authentication key rather than from the signing key directly, the private
// key can later be rotated without changing the account's address.
//
// Keys:
//
// All key generation functions return an instance of the PrivKey interface
// which implements methods:
//
//	type PrivKey interface {
//		Bytes() []byte
//		Sign(msg []byte) ([]byte, error)
//		PubKey() PubKey
//		Type() string
//	}
//
// From the above method we can retrieve the public key if needed:
//
//	privKey := ed25519.GenPrivKey()
//	pubKey := privKey.PubKey()
//
// The resulting public key is an instance of the PubKey interface:
//
//	type PubKey interface {
//		Address() Address
//		Bytes() []byte
//		VerifySignature(msg []byte, sig []byte) bool
//		Type() string
//	}
//
// Supported schemes are single Ed25519 keys (crypto/ed25519) and K-of-N
// threshold Ed25519 key sets (crypto/multied25519).
package crypto
