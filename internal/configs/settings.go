package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
)

// Environment variables recognized by passbox. Each one overrides the
// corresponding config.toml value.
const (
	EnvLocation   = "PASSBOX_LOCATION"
	EnvAsymmetric = "PASSBOX_ASYMMETRIC"
	EnvRecipient  = "PASSBOX_RECIPIENT"
)

// DefaultGenerateLength is the password length `generate` uses when neither
// the flag nor the config file says otherwise.
const DefaultGenerateLength = 20

// MaxGenerateLength caps requested password lengths.
const MaxGenerateLength = 100

type UserSettings struct {
	// StorePath is the encrypted backing file.
	StorePath string

	// KeysPath holds RSA key pairs for asymmetric mode.
	KeysPath string

	// UserConfigsPath holds config.toml.
	UserConfigsPath string
}

var UserPassboxSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserPassboxSettings = &UserSettings{
		StorePath:       filepath.Join(homeDir, ".passbox", "store.pbx"),
		KeysPath:        filepath.Join(dataDir, "passbox", "keys"),
		UserConfigsPath: filepath.Join(configDir, "passbox"),
	}
}

// StoreSettings is the fully resolved per-invocation configuration of the
// backing store: built-in defaults, then config.toml, then environment.
type StoreSettings struct {
	StorePath      string
	Asymmetric     bool
	Recipient      string
	GenerateLength int
}

// ResolveStoreSettings layers config.toml and the environment over the
// built-in defaults.
func ResolveStoreSettings() (StoreSettings, error) {
	resolved := StoreSettings{
		StorePath:      UserPassboxSettings.StorePath,
		GenerateLength: DefaultGenerateLength,
	}

	config, err := LoadUserConfig()
	if err != nil {
		return StoreSettings{}, err
	}
	if config.Store.Location != "" {
		resolved.StorePath = config.Store.Location
	}
	resolved.Asymmetric = config.Crypto.Asymmetric
	resolved.Recipient = config.Crypto.Recipient
	if config.Generate.Length > 0 {
		resolved.GenerateLength = config.Generate.Length
	}

	if loc := os.Getenv(EnvLocation); loc != "" {
		resolved.StorePath = loc
	}
	if raw := os.Getenv(EnvAsymmetric); raw != "" {
		asymmetric, err := strconv.ParseBool(raw)
		if err != nil {
			return StoreSettings{}, fmt.Errorf("%w: %s=%q is not a boolean", pberrors.ErrInvalidInput, EnvAsymmetric, raw)
		}
		resolved.Asymmetric = asymmetric
	}
	if recipient := os.Getenv(EnvRecipient); recipient != "" {
		resolved.Recipient = recipient
	}

	if resolved.GenerateLength > MaxGenerateLength {
		resolved.GenerateLength = MaxGenerateLength
	}
	return resolved, nil
}
