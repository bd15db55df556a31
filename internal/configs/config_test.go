package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
)

func TestGenerateStoreUUID(t *testing.T) {
	uuid := GenerateStoreUUID()
	if uuid == "" {
		t.Fatal("GenerateStoreUUID returned empty string")
	}

	if len(uuid) != 36 {
		t.Fatalf("Expected UUID length 36, got %d", len(uuid))
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserPassboxSettings.UserConfigsPath
	UserPassboxSettings.UserConfigsPath = tempDir
	defer func() {
		UserPassboxSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config := &UserConfig{
		Store: StoreConfig{
			UUID:     "test-uuid-123",
			Location: "/tmp/store.pbx",
		},
		Crypto: CryptoConfig{
			Asymmetric: true,
			Recipient:  "backup",
		},
		Generate: GenerateConfig{Length: 32},
	}

	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loadedConfig, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}

	if loadedConfig.Store.UUID != config.Store.UUID {
		t.Errorf("Expected UUID %q, got %q", config.Store.UUID, loadedConfig.Store.UUID)
	}
	if loadedConfig.Store.Location != config.Store.Location {
		t.Errorf("Expected Location %q, got %q", config.Store.Location, loadedConfig.Store.Location)
	}
	if !loadedConfig.Crypto.Asymmetric {
		t.Error("Expected Asymmetric to persist as true")
	}
	if loadedConfig.Crypto.Recipient != "backup" {
		t.Errorf("Expected Recipient %q, got %q", "backup", loadedConfig.Crypto.Recipient)
	}
	if loadedConfig.Generate.Length != 32 {
		t.Errorf("Expected Length 32, got %d", loadedConfig.Generate.Length)
	}
}

func TestLoadUserConfigNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserPassboxSettings.UserConfigsPath
	UserPassboxSettings.UserConfigsPath = tempDir
	defer func() {
		UserPassboxSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig on missing file failed: %v", err)
	}
	if config.Store.UUID != "" || config.Crypto.Asymmetric {
		t.Errorf("missing config file should load as zero config, got %+v", config)
	}
}

func TestEnsureUserConfigAssignsUUID(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserPassboxSettings.UserConfigsPath
	UserPassboxSettings.UserConfigsPath = tempDir
	defer func() {
		UserPassboxSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig failed: %v", err)
	}
	if config.Store.UUID == "" {
		t.Fatal("EnsureUserConfig should assign a store UUID")
	}

	// UUID must be stable once assigned.
	again, err := EnsureUserConfig()
	if err != nil {
		t.Fatalf("EnsureUserConfig (second call) failed: %v", err)
	}
	if again.Store.UUID != config.Store.UUID {
		t.Errorf("store UUID changed between calls: %q -> %q", config.Store.UUID, again.Store.UUID)
	}
}

func TestResolveStoreSettingsEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserPassboxSettings.UserConfigsPath
	UserPassboxSettings.UserConfigsPath = tempDir
	defer func() {
		UserPassboxSettings.UserConfigsPath = oldUserConfigsPath
	}()

	config := &UserConfig{
		Store:    StoreConfig{Location: filepath.Join(tempDir, "from-config.pbx")},
		Generate: GenerateConfig{Length: 500}, // over the cap
	}
	if err := SaveUserConfig(config); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	envStore := filepath.Join(tempDir, "from-env.pbx")
	os.Setenv(EnvLocation, envStore)
	os.Setenv(EnvAsymmetric, "true")
	os.Setenv(EnvRecipient, "backup")
	defer func() {
		os.Unsetenv(EnvLocation)
		os.Unsetenv(EnvAsymmetric)
		os.Unsetenv(EnvRecipient)
	}()

	resolved, err := ResolveStoreSettings()
	if err != nil {
		t.Fatalf("ResolveStoreSettings failed: %v", err)
	}

	if resolved.StorePath != envStore {
		t.Errorf("env should override config location, got %q", resolved.StorePath)
	}
	if !resolved.Asymmetric {
		t.Error("PASSBOX_ASYMMETRIC=true should enable asymmetric mode")
	}
	if resolved.Recipient != "backup" {
		t.Errorf("Recipient = %q, want backup", resolved.Recipient)
	}
	if resolved.GenerateLength != MaxGenerateLength {
		t.Errorf("GenerateLength = %d, want capped at %d", resolved.GenerateLength, MaxGenerateLength)
	}
}

func TestResolveStoreSettingsRejectsBadAsymmetricValue(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigsPath := UserPassboxSettings.UserConfigsPath
	UserPassboxSettings.UserConfigsPath = tempDir
	defer func() {
		UserPassboxSettings.UserConfigsPath = oldUserConfigsPath
	}()

	// A typo must fail loudly, not silently keep symmetric mode.
	os.Setenv(EnvAsymmetric, "ture")
	defer os.Unsetenv(EnvAsymmetric)

	_, err := ResolveStoreSettings()
	if !errors.Is(err, pberrors.ErrInvalidInput) {
		t.Errorf("ResolveStoreSettings with %s=ture = %v, want ErrInvalidInput", EnvAsymmetric, err)
	}
}
