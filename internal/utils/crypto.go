// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateReferenceCode produces the short code quoted in inquiry and offer
// emails so the artist can match replies to the original message.
func GenerateReferenceCode() string {
	code, err := GenerateRandomString(8)
	if err != nil {
		// rand.Reader failing means the process is in a bad state; a
		// timestamp code still lets the message go out.
		return fmt.Sprintf("REF-%d", time.Now().UnixNano())
	}
	return "REF-" + strings.ToUpper(code)
}
