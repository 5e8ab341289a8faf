package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// AlphanumericAlphabet is the default alphabet for generated secrets.
const AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws each character uniformly from the alphabet using
// crypto/rand, so generated secrets carry no modulo bias.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	secret := make([]byte, length)
	for index := range secret {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		secret[index] = alphabet[position.Int64()]
	}

	return string(secret), nil
}
