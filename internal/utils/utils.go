package utils

import (
	"crypto/rand"
	"math/big"
)

// StudentIDValid reports whether s looks like a student id: exactly six
// digits. Forms validate this before anything is sent to the backend.
func StudentIDValid(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomID(length ...int) (string, error) {
	idLength := 8
	if len(length) > 0 {
		idLength = length[0]
	}

	id := make([]byte, idLength)
	for i := range id {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}

		id[i] = charset[num.Int64()]
	}

	return string(id), nil
}
