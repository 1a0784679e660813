package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateInviteCode returns an 8-character uppercase hex code built
// from 4 random bytes. Uniqueness against stored codes is the caller's
// concern; the collision chance per draw is ~1 in 4.3 billion.
func GenerateInviteCode() (string, error) {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(bytes)), nil
}
