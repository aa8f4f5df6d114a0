package util

import (
	"crypto/rand"
	"fmt"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateShortID returns a 6-character alphanumeric string using cryptographic randomness.
func GenerateShortID() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i := range bytes {
		bytes[i] = alphanumeric[int(bytes[i])%len(alphanumeric)]
	}

	return string(bytes), nil
}

// GenerateBlockID returns a block ID in the format b01, b02, ..., b99, b100, etc.
// Block IDs only need to be unique within one scheduler run, since a week's
// blocks are replaced wholesale on every run.
func GenerateBlockID(index int) string {
	return fmt.Sprintf("b%02d", index+1)
}
