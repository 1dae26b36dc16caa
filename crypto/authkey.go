package crypto

import (
	"fmt"

	"github.com/helix-ledger/helix/crypto/sha3256"
	hxbytes "github.com/helix-ledger/helix/libs/bytes"
)

// AuthKeyScheme is the 1-byte discriminant appended to public key material
// before hashing. It domain-separates the derivation recipes: the same key
// bytes hashed under different schemes yield unrelated authentication keys.
//
// The tag values are protocol constants. Changing them, or the hash function,
// breaks address equivalence with every other conforming implementation.
type AuthKeyScheme byte

const (
	// AuthKeySchemeEd25519 derives from a single Ed25519 public key.
	AuthKeySchemeEd25519 AuthKeyScheme = 0x00
	// AuthKeySchemeMultiEd25519 derives from a K-of-N threshold Ed25519
	// public key set.
	AuthKeySchemeMultiEd25519 AuthKeyScheme = 0x01
	// AuthKeySchemeDeriveResourceAccount is reserved for resource account
	// derivation, which hashes an address and a seed rather than public key
	// material. No recipe for it lives in this package.
	AuthKeySchemeDeriveResourceAccount AuthKeyScheme = 0xFF
)

const (
	// AuthenticationKeySize is the byte length of an authentication key,
	// fixed by the digest size of SHA3-256.
	AuthenticationKeySize = sha3256.Size

	// AddressSize is the byte length of an account address.
	AddressSize = AuthenticationKeySize
)

// ErrInvalidAuthKeyLength is returned when constructing an AuthenticationKey
// from a byte sequence whose length is not exactly AuthenticationKeySize.
type ErrInvalidAuthKeyLength struct {
	Got int
}

func (e ErrInvalidAuthKeyLength) Error() string {
	return fmt.Sprintf("authentication key must be exactly %d bytes, got %d", AuthenticationKeySize, e.Got)
}

// AuthenticationKey is the 32-byte value an account authenticates with. It is
// derived from the account's public key material and can be rotated without
// changing the account's address.
//
// An AuthenticationKey is a value: construct it once, share it read-only.
type AuthenticationKey []byte

// NewAuthenticationKey constructs an AuthenticationKey from raw bytes. The
// input is copied. It returns ErrInvalidAuthKeyLength unless bz is exactly
// AuthenticationKeySize bytes.
func NewAuthenticationKey(bz []byte) (AuthenticationKey, error) {
	if len(bz) != AuthenticationKeySize {
		return nil, ErrInvalidAuthKeyLength{Got: len(bz)}
	}
	key := make(AuthenticationKey, AuthenticationKeySize)
	copy(key, bz)
	return key, nil
}

// AuthenticationKeyFromHex constructs an AuthenticationKey from a hex string,
// with or without a "0x" prefix.
func AuthenticationKeyFromHex(s string) (AuthenticationKey, error) {
	bz, err := hxbytes.FromHex(s)
	if err != nil {
		return nil, err
	}
	return NewAuthenticationKey(bz)
}

// AuthenticationKeyFromPreimage hashes the given public key material with the
// scheme tag appended as a single trailing byte:
//
//	SHA3-256(keyMaterial || scheme)
//
// The digest is AuthenticationKeySize bytes, so the result always satisfies
// the length invariant. Key packages call this with their own canonical byte
// serialization; callers normally use the scheme packages instead.
func AuthenticationKeyFromPreimage(keyMaterial []byte, scheme AuthKeyScheme) AuthenticationKey {
	return AuthenticationKey(sha3256.SumMany(keyMaterial, []byte{byte(scheme)}))
}

// Bytes returns the key's underlying bytes. Treat them as read-only.
func (key AuthenticationKey) Bytes() []byte {
	return []byte(key)
}

// DerivedAddress returns the account address for this authentication key: an
// exact byte-for-byte copy of the key. Addresses and authentication keys
// share the same width in the current protocol version, so the mapping is the
// identity at the byte level.
func (key AuthenticationKey) DerivedAddress() Address {
	addr := make(Address, AddressSize)
	copy(addr, key)
	return addr
}

func (key AuthenticationKey) String() string {
	return hxbytes.HexBytes(key).String()
}
