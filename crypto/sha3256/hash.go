package sha3256

import (
	"fmt"
	"hash"
	"regexp"

	"golang.org/x/crypto/sha3"
)

const (
	Size = 32
	// BlockSize is the sponge rate of SHA3-256.
	BlockSize = 136
)

// New returns a new hash.Hash.
func New() hash.Hash {
	return sha3.New256()
}

// Sum returns the SHA3-256 of the bz.
func Sum(bz []byte) []byte {
	h := sha3.Sum256(bz)
	return h[:]
}

// SumMany takes at least 1 byteslice along with a variadic
// number of other byteslices and produces the SHA3-256 sum from
// hashing them as if they were 1 joined slice.
func SumMany(data []byte, rest ...[]byte) []byte {
	h := sha3.New256()
	h.Write(data)
	for _, data := range rest {
		h.Write(data)
	}
	return h.Sum(nil)
}

// ValidateSHA3256 checks if the given string is a syntactically valid
// SHA3-256 digest. A valid digest is a hex-encoded 64-character string.
// If the digest isn't valid, it returns an error explaining why.
func ValidateSHA3256(hashStr string) error {
	const sha3Pattern = `^[a-fA-F0-9]{64}$`

	if len(hashStr) != 64 {
		return fmt.Errorf("expected 64 characters, but have %d", len(hashStr))
	}

	match, err := regexp.MatchString(sha3Pattern, hashStr)
	if err != nil {
		// if this happens, there is a bug in the regex or some internal regexp
		// package error.
		return fmt.Errorf("can't run regex %q: %s", sha3Pattern, err)
	}

	if !match {
		return fmt.Errorf("contains non-hexadecimal characters")
	}

	return nil
}
