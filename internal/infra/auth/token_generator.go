package auth

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"rentauth/internal/domain/service"
	"rentauth/internal/errors"
)

// tokenBytes gives 128 bits of entropy, hex-encoded to 32 characters.
const tokenBytes = 16

type randomTokenGenerator struct {
	source io.Reader
}

// NewTokenGenerator returns a generator backed by crypto/rand.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{source: rand.Reader}
}

// Generate returns a fresh opaque token.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for token")
	}

	return hex.EncodeToString(buf), nil
}
