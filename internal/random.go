package internal

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// NewOTP generates a numeric one-time code with the given number of digits.
// Each digit is drawn independently from crypto/rand, so leading zeros are
// possible and the code must be handled as a string.
func NewOTP(digits int) (string, error) {
	if digits < 6 || digits > 10 {
		return "", errors.New("invalid otp digits")
	}

	var b strings.Builder
	b.Grow(digits)

	max := big.NewInt(10)
	for i := 0; i < digits; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	otp := b.String()
	if len(otp) != digits {
		return "", fmt.Errorf("invalid otp generation length")
	}
	return otp, nil
}

// HashCode returns the SHA-256 digest of a challenge code. Plaintext codes
// are never persisted.
func HashCode(code string) [32]byte {
	return sha256.Sum256([]byte(code))
}

// CodesEqual compares two code hashes in constant time.
func CodesEqual(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
