package id

import (
	"crypto/rand"
	"fmt"
)

// JoinCodeLength is the fixed length of club and team join codes.
const JoinCodeLength = 8

// Ambiguous characters (0/O, 1/I/L) are left out so codes survive being
// read aloud or written on paper.
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// NewJoinCode returns an 8-character shared secret for self-service joins.
func NewJoinCode() (string, error) {
	buf := make([]byte, JoinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, JoinCodeLength)
	for i, b := range buf {
		out[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}

	return string(out), nil
}
