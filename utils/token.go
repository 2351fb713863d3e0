package utils

import (
	"crypto/rand"
	"math/big"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		token[i] = charset[n.Int64()]
	}
	return string(token)
}

// GenerateNumericCode returns a zero-padded code, e.g. "042913".
func GenerateNumericCode(digits int) string {
	code := make([]byte, digits)
	for i := range code {
		n, _ := rand.Int(rand.Reader, big.NewInt(10))
		code[i] = byte('0' + n.Int64())
	}
	return string(code)
}
