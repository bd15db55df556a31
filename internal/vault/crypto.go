package vault

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the size in bytes of a NaCl secretbox key.
	KeySize = 32

	// SaltSize is the size in bytes of the scrypt salt.
	SaltSize = 32

	nonceSize = 24

	// armorWidth is the line width of the base64 armored backing file.
	armorWidth = 64
)

// scryptParams are the scrypt work parameters for passphrase key
// derivation.
var scryptParams = struct {
	N int
	r int
	p int
}{32768, 8, 4}

// deriveKey applies scrypt to generate a secretbox key from a passphrase
// and salt.
func deriveKey(passphrase, salt []byte) (*[KeySize]byte, error) {
	rawKey, err := scrypt.Key(passphrase, salt, scryptParams.N, scryptParams.r, scryptParams.p, KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	var key [KeySize]byte
	copy(key[:], rawKey)
	wipe(rawKey)
	return &key, nil
}

// sealSymmetric encrypts plaintext under a passphrase-derived key. Layout:
// salt | nonce | box. A fresh salt and nonce are drawn on every call, so
// re-encrypting identical plaintext produces different output.
func sealSymmetric(passphrase, plaintext []byte) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	key, err := deriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}
	defer wipe(key[:])

	return append(salt, seal(key, plaintext)...), nil
}

// openSymmetric reverses sealSymmetric. Authentication failure, a wrong
// passphrase included, is ErrUnauthorized; partial plaintext is never
// returned.
func openSymmetric(passphrase, blob []byte) ([]byte, error) {
	if len(blob) < SaltSize+nonceSize {
		return nil, fmt.Errorf("ciphertext too short: %w", pberrors.ErrUnauthorized)
	}

	key, err := deriveKey(passphrase, blob[:SaltSize])
	if err != nil {
		return nil, err
	}
	defer wipe(key[:])

	plaintext, ok := open(key, blob[SaltSize:])
	if !ok {
		return nil, pberrors.ErrUnauthorized
	}
	return plaintext, nil
}

// seal encrypts with NaCl secretbox, prepending the random nonce.
func seal(key *[KeySize]byte, plaintext []byte) []byte {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		// The system CSPRNG failing is not a recoverable condition.
		panic(fmt.Sprintf("reading random nonce: %v", err))
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, key)
}

// open extracts the nonce and decrypts with NaCl secretbox.
func open(key *[KeySize]byte, blob []byte) ([]byte, bool) {
	if len(blob) < nonceSize {
		return nil, false
	}
	var nonce [nonceSize]byte
	copy(nonce[:], blob[:nonceSize])
	return secretbox.Open(nil, blob[nonceSize:], &nonce, key)
}

// armor renders a binary blob as base64 wrapped at armorWidth columns, the
// on-disk representation of the backing file.
func armor(blob []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(blob)

	var b strings.Builder
	for len(encoded) > armorWidth {
		b.WriteString(encoded[:armorWidth])
		b.WriteByte('\n')
		encoded = encoded[armorWidth:]
	}
	b.WriteString(encoded)
	b.WriteByte('\n')
	return []byte(b.String())
}

// dearmor reverses armor, tolerating any whitespace layout.
func dearmor(data []byte) ([]byte, error) {
	compact := strings.Join(strings.Fields(string(data)), "")
	blob, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("backing file is not armored ciphertext: %w", pberrors.ErrUnauthorized)
	}
	return blob, nil
}

// wipe zeroes a byte slice, best effort.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Wipe zeroes a sensitive buffer. Callers that hold key material beyond an
// Unlock/Persist pair (a prompted passphrase, typically) use it to discard
// the buffer once the last cipher operation is done.
func Wipe(b []byte) {
	wipe(b)
}
