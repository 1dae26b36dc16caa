package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-ledger/helix/crypto"
	hxbytes "github.com/helix-ledger/helix/libs/bytes"
)

// SHA3-256(32 zero bytes || 0x00), computed with a reference SHA3-256
// implementation.
const zeroKeyEd25519AuthKeyHex = "dc33296e4d20f0ef35ff9fd449e23ebbaa5a049a17779db3c2fe194b499aaf74"

func TestNewAuthenticationKeyLengthInvariant(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr bool
	}{
		{"Empty", []byte{}, true},
		{"Nil", nil, true},
		{"31Bytes", make([]byte, 31), true},
		{"32Bytes", make([]byte, 32), false},
		{"33Bytes", make([]byte, 33), true},
		{"64Bytes", make([]byte, 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := crypto.NewAuthenticationKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var lenErr crypto.ErrInvalidAuthKeyLength
				require.ErrorAs(t, err, &lenErr)
				assert.Equal(t, len(tt.input), lenErr.Got)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key.Bytes(), crypto.AuthenticationKeySize)
		})
	}
}

func TestNewAuthenticationKeyCopiesInput(t *testing.T) {
	input := make([]byte, crypto.AuthenticationKeySize)
	input[0] = 0xAA

	key, err := crypto.NewAuthenticationKey(input)
	require.NoError(t, err)

	input[0] = 0xBB
	assert.EqualValues(t, 0xAA, key.Bytes()[0])
}

func TestAuthenticationKeyFromHex(t *testing.T) {
	key, err := crypto.AuthenticationKeyFromHex(zeroKeyEd25519AuthKeyHex)
	require.NoError(t, err)

	prefixed, err := crypto.AuthenticationKeyFromHex("0x" + zeroKeyEd25519AuthKeyHex)
	require.NoError(t, err)
	assert.Equal(t, key, prefixed)

	// hex of the wrong width decodes but fails the length check
	_, err = crypto.AuthenticationKeyFromHex(zeroKeyEd25519AuthKeyHex[:62])
	var lenErr crypto.ErrInvalidAuthKeyLength
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 31, lenErr.Got)

	// not hex at all
	_, err = crypto.AuthenticationKeyFromHex("zz")
	require.Error(t, err)
}

func TestAuthenticationKeyFromPreimage(t *testing.T) {
	zeroPub := make([]byte, 32)

	key := crypto.AuthenticationKeyFromPreimage(zeroPub, crypto.AuthKeySchemeEd25519)
	require.Len(t, key.Bytes(), crypto.AuthenticationKeySize)

	want, err := hxbytes.FromHex(zeroKeyEd25519AuthKeyHex)
	require.NoError(t, err)
	assert.Equal(t, []byte(want), key.Bytes())

	// determinism
	again := crypto.AuthenticationKeyFromPreimage(zeroPub, crypto.AuthKeySchemeEd25519)
	assert.Equal(t, key, again)
}

func TestAuthenticationKeyDomainSeparation(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 32)

	single := crypto.AuthenticationKeyFromPreimage(payload, crypto.AuthKeySchemeEd25519)
	multi := crypto.AuthenticationKeyFromPreimage(payload, crypto.AuthKeySchemeMultiEd25519)

	assert.NotEqual(t, single, multi)
}

func TestDerivedAddressIsByteIdentity(t *testing.T) {
	key := crypto.AuthenticationKeyFromPreimage(crypto.CRandBytes(32), crypto.AuthKeySchemeEd25519)

	addr := key.DerivedAddress()
	require.Len(t, []byte(addr), crypto.AddressSize)
	assert.Equal(t, key.Bytes(), []byte(addr))

	// the address is a copy, not a view
	addr[0] ^= 0xFF
	assert.NotEqual(t, key.Bytes()[0], addr[0])
}

func TestAuthKeySchemeValues(t *testing.T) {
	// Protocol constants. These must match every conforming implementation.
	assert.EqualValues(t, 0x00, crypto.AuthKeySchemeEd25519)
	assert.EqualValues(t, 0x01, crypto.AuthKeySchemeMultiEd25519)
	assert.EqualValues(t, 0xFF, crypto.AuthKeySchemeDeriveResourceAccount)
	assert.Equal(t, 32, crypto.AuthenticationKeySize)
	assert.Equal(t, 32, crypto.AddressSize)
}
