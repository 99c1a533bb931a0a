package service

// TokenGenerator produces opaque single-use tokens for email links.
type TokenGenerator interface {
	// Generate returns a fresh unpredictable token. An error means the
	// randomness source failed and the caller must abort.
	Generate() (string, error)
}
