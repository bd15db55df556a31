package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UserConfig struct {
	Store    StoreConfig    `toml:"store"`
	Crypto   CryptoConfig   `toml:"crypto"`
	Generate GenerateConfig `toml:"generate"`
}

type StoreConfig struct {
	// UUID identifies this store across machines. Generated on first save.
	UUID string `toml:"store_uuid"`

	// Location overrides the default backing file path when set.
	Location string `toml:"location"`
}

type CryptoConfig struct {
	// Asymmetric switches the cipher to public-key mode.
	Asymmetric bool `toml:"asymmetric"`

	// Recipient names the key pair used in asymmetric mode. Empty means
	// "encrypt to self".
	Recipient string `toml:"recipient"`
}

type GenerateConfig struct {
	// Length is the default generated password length.
	Length int `toml:"length"`
}

// LoadUserConfig loads the user configuration from the config file. A
// missing file yields the zero config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserPassboxSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserPassboxSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// GenerateStoreUUID generates a new UUID for the store.
func GenerateStoreUUID() string {
	return uuid.New().String()
}

// EnsureUserConfig ensures the user configuration exists and carries a
// store UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Store.UUID == "" {
		config.Store.UUID = GenerateStoreUUID()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}
