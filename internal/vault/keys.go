package vault

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
)

// SelfRecipient is the key pair name used when PASSBOX_RECIPIENT is empty:
// "encrypt to self".
const SelfRecipient = "self"

const rsaKeyBits = 2048

// recipientName maps the configured recipient to a key pair name.
func recipientName(recipient string) string {
	if recipient == "" {
		return SelfRecipient
	}
	return recipient
}

// KeyPairPaths returns the private and public key file paths for a
// recipient within keysPath.
func KeyPairPaths(keysPath, recipient string) (privatePath, publicPath string) {
	name := recipientName(recipient)
	return filepath.Join(keysPath, name+".pem"), filepath.Join(keysPath, name+".pub")
}

// LoadPrivateKey loads an RSA private key from disk.
func LoadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, pberrors.ErrKeyNotFound)
		}
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "RSA PRIVATE KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing private key")
	}
	return x509.ParsePKCS1PrivateKey(block.Bytes)
}

// LoadPublicKey loads an RSA public key from disk.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, pberrors.ErrKeyNotFound)
		}
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPub, nil
}

// GenerateKeyPair creates a new RSA key pair for a recipient and saves both
// halves under keysPath. The private key file is created 0600.
func GenerateKeyPair(keysPath, recipient string) error {
	privatePath, publicPath := KeyPairPaths(keysPath, recipient)

	if _, err := os.Stat(privatePath); err == nil {
		return fmt.Errorf("key pair %q already exists at %s: %w", recipientName(recipient), privatePath, os.ErrExist)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	if err := os.MkdirAll(keysPath, 0700); err != nil {
		return fmt.Errorf("failed to create key directory %s: %w", keysPath, err)
	}

	privBytes := x509.MarshalPKCS1PrivateKey(privateKey)
	privPem := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: privBytes})
	if err := os.WriteFile(privatePath, privPem, 0600); err != nil {
		return fmt.Errorf("failed to write private key to %s: %w", privatePath, err)
	}

	pubASN1, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	if err := os.WriteFile(publicPath, pubPem, 0600); err != nil {
		return fmt.Errorf("failed to write public key to %s: %w", publicPath, err)
	}

	return nil
}

// wrapSessionKey encrypts a fresh session key to the recipient's public key.
func wrapSessionKey(sessionKey []byte, pub *rsa.PublicKey) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, sessionKey, nil)
}

// unwrapSessionKey recovers the session key with the recipient's private
// key. Failure means the wrong key pair, which the caller reports as an
// authorization failure.
func unwrapSessionKey(wrapped []byte, priv *rsa.PrivateKey) ([]byte, error) {
	sessionKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrapped, nil)
	if err != nil {
		return nil, pberrors.ErrUnauthorized
	}
	return sessionKey, nil
}
