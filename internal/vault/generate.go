package vault

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/PolarWolf314/passbox/internal/configs"
)

// GeneratePassword returns a random password of the requested length drawn
// from the base64 alphabet. Lengths at or below zero fall back to the
// default; lengths above the cap are clamped. It never touches the store.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = configs.DefaultGenerateLength
	}
	if length > configs.MaxGenerateLength {
		length = configs.MaxGenerateLength
	}

	// base64 expands 3 bytes to 4 characters; draw enough entropy to cover
	// the requested length before truncating.
	raw := make([]byte, (length*3+3)/4+3)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	defer wipe(raw)

	encoded := base64.RawStdEncoding.EncodeToString(raw)
	return encoded[:length], nil
}
