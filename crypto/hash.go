package crypto

import (
	"github.com/helix-ledger/helix/crypto/sha3256"
)

func Sha3256(bytes []byte) []byte {
	hasher := sha3256.New()
	hasher.Write(bytes)
	return hasher.Sum(nil)
}
