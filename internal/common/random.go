package common

import (
	"crypto/rand"
	"math/big"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandBase36String returns a random string of length n over the base36
// alphabet (digits and lowercase letters), using crypto/rand.
func RandBase36String(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// nothing sensible to degrade to.
			panic(err)
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}

// WipeByteArray overwrites the buffer with zeros. Use it to scrub
// passwords from memory once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
