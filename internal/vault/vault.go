package vault

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/passbox/internal/configs"
	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/store"

	"github.com/natefinch/atomic"
)

// magic identifies a passbox backing file once dearmored.
var magic = []byte("PBOX1")

// Cipher modes recorded in the file header. Decryption always follows the
// header, so a store written in one mode stays readable after the
// configuration changes.
const (
	modeSymmetric  byte = 1
	modeAsymmetric byte = 2
)

// Vault binds a backing file to its cipher configuration. It is the only
// component that touches the disk or the cipher; the store above it deals
// purely in records.
type Vault struct {
	settings configs.StoreSettings
	keysPath string
}

// Open binds a vault to the resolved settings. No I/O happens until Unlock
// or Persist.
func Open(settings configs.StoreSettings) *Vault {
	return &Vault{
		settings: settings,
		keysPath: configs.UserPassboxSettings.KeysPath,
	}
}

// Path returns the backing file path.
func (v *Vault) Path() string {
	return v.settings.StorePath
}

// NeedsPassphrase reports whether Unlock and Persist require a passphrase.
// Asymmetric mode authenticates with the recipient's private key instead.
//
// An existing backing file answers for itself: decryption dispatches on the
// header's mode byte, so a symmetric-mode file still needs its passphrase
// even when the configuration has since switched to asymmetric. Only a
// missing or unreadable file falls back to the configured mode.
func (v *Vault) NeedsPassphrase() bool {
	if !v.settings.Asymmetric {
		return true
	}
	mode, err := v.fileMode()
	return err == nil && mode == modeSymmetric
}

// fileMode reads the header mode byte of the backing file.
func (v *Vault) fileMode() (byte, error) {
	data, err := os.ReadFile(v.settings.StorePath)
	if err != nil {
		return 0, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return 0, pberrors.ErrStoreMissing
	}
	blob, err := dearmor(data)
	if err != nil {
		return 0, err
	}
	if len(blob) < len(magic)+1 || !bytes.Equal(blob[:len(magic)], magic) {
		return 0, pberrors.ErrUnauthorized
	}
	return blob[len(magic)], nil
}

// Unlock decrypts the backing file and parses it into a store.
//
// A missing or empty backing file returns an empty store together with
// ErrStoreMissing; only the very first `new` entry may proceed past that.
// A non-empty file that fails to parse or authenticate is ErrUnauthorized.
// The cipher is authenticated, so garbage plaintext is never returned.
func (v *Vault) Unlock(passphrase []byte) (*store.Store, int, error) {
	data, err := os.ReadFile(v.settings.StorePath)
	if os.IsNotExist(err) {
		return store.New(), 0, pberrors.ErrStoreMissing
	}
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", v.settings.StorePath, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return store.New(), 0, pberrors.ErrStoreMissing
	}

	blob, err := dearmor(data)
	if err != nil {
		return nil, 0, err
	}
	if len(blob) < len(magic)+1 || !bytes.Equal(blob[:len(magic)], magic) {
		return nil, 0, fmt.Errorf("%s is not a passbox store: %w", v.settings.StorePath, pberrors.ErrUnauthorized)
	}

	mode := blob[len(magic)]
	payload := blob[len(magic)+1:]

	var plaintext []byte
	switch mode {
	case modeSymmetric:
		plaintext, err = openSymmetric(passphrase, payload)
	case modeAsymmetric:
		plaintext, err = v.openAsymmetric(payload)
	default:
		err = fmt.Errorf("unknown cipher mode %d: %w", mode, pberrors.ErrUnauthorized)
	}
	if err != nil {
		return nil, 0, err
	}
	defer wipe(plaintext)

	st, dropped := store.Parse(plaintext)
	return st, dropped, nil
}

// Persist serializes the store, encrypts it under the configured mode, and
// atomically replaces the backing file. A fresh salt and nonce are used on
// every write. The parent directory is created on first write.
func (v *Vault) Persist(passphrase []byte, st *store.Store) error {
	plaintext, err := st.Serialize()
	if err != nil {
		return err
	}
	defer wipe(plaintext)

	var payload []byte
	header := append(append([]byte(nil), magic...), modeSymmetric)
	if v.settings.Asymmetric {
		header[len(magic)] = modeAsymmetric
		payload, err = v.sealAsymmetric(plaintext)
	} else {
		payload, err = sealSymmetric(passphrase, plaintext)
	}
	if err != nil {
		return err
	}

	armored := armor(append(header, payload...))

	dir := filepath.Dir(v.settings.StorePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := atomic.WriteFile(v.settings.StorePath, bytes.NewReader(armored)); err != nil {
		return fmt.Errorf("writing %s: %w", v.settings.StorePath, err)
	}
	if err := os.Chmod(v.settings.StorePath, 0600); err != nil {
		return fmt.Errorf("restricting %s: %w", v.settings.StorePath, err)
	}
	return nil
}

// sealAsymmetric implements the hybrid scheme: a random session key seals
// the plaintext with secretbox, and the recipient's RSA public key wraps
// the session key. Layout: uint16 wrapped length | wrapped key | nonce | box.
func (v *Vault) sealAsymmetric(plaintext []byte) ([]byte, error) {
	_, publicPath := KeyPairPaths(v.keysPath, v.settings.Recipient)
	pub, err := LoadPublicKey(publicPath)
	if err != nil {
		return nil, err
	}

	sessionKey := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, sessionKey); err != nil {
		return nil, fmt.Errorf("generating session key: %w", err)
	}
	defer wipe(sessionKey)

	wrapped, err := wrapSessionKey(sessionKey, pub)
	if err != nil {
		return nil, fmt.Errorf("wrapping session key: %w", err)
	}

	var key [KeySize]byte
	copy(key[:], sessionKey)
	defer wipe(key[:])

	payload := make([]byte, 2, 2+len(wrapped))
	binary.BigEndian.PutUint16(payload, uint16(len(wrapped)))
	payload = append(payload, wrapped...)
	return append(payload, seal(&key, plaintext)...), nil
}

func (v *Vault) openAsymmetric(payload []byte) ([]byte, error) {
	if len(payload) < 2 {
		return nil, fmt.Errorf("truncated store: %w", pberrors.ErrUnauthorized)
	}
	wrappedLen := int(binary.BigEndian.Uint16(payload))
	if len(payload) < 2+wrappedLen {
		return nil, fmt.Errorf("truncated store: %w", pberrors.ErrUnauthorized)
	}
	wrapped := payload[2 : 2+wrappedLen]

	privatePath, _ := KeyPairPaths(v.keysPath, v.settings.Recipient)
	priv, err := LoadPrivateKey(privatePath)
	if err != nil {
		return nil, err
	}

	sessionKey, err := unwrapSessionKey(wrapped, priv)
	if err != nil {
		return nil, err
	}
	defer wipe(sessionKey)

	var key [KeySize]byte
	copy(key[:], sessionKey)
	defer wipe(key[:])

	plaintext, ok := open(&key, payload[2+wrappedLen:])
	if !ok {
		return nil, pberrors.ErrUnauthorized
	}
	return plaintext, nil
}
