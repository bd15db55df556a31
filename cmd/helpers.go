package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/passbox/internal/configs"
	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/record"
	"github.com/PolarWolf314/passbox/internal/store"
	"github.com/PolarWolf314/passbox/internal/terminal"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in
// verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// openVault resolves the effective store settings and returns a vault over
// the backing file.
func openVault() (*vault.Vault, configs.StoreSettings, error) {
	settings, err := configs.ResolveStoreSettings()
	if err != nil {
		return nil, configs.StoreSettings{}, Logger.ErrorfAndReturn("failed to resolve store settings: %v", err)
	}
	Logger.Debugf("Store path: %s, asymmetric: %t", settings.StorePath, settings.Asymmetric)
	return vault.Open(settings), settings, nil
}

// unlockStore prompts for the master passphrase when the vault needs one and
// decrypts the backing file. A missing backing file is tolerated only when
// allowMissing is set, which only `passbox new` does.
//
// The returned passphrase is needed again to persist, so callers must hold on
// to it for the lifetime of the command.
func unlockStore(v *vault.Vault, allowMissing bool) (*store.Store, []byte, error) {
	var passphrase []byte
	if v.NeedsPassphrase() {
		var err error
		passphrase, err = terminal.ReadPassphrase("Master passphrase: ")
		if err != nil {
			return nil, nil, err
		}
	}

	_, stop := startSpinner("Decrypting store...")
	st, dropped, err := v.Unlock(passphrase)
	stop()
	if err != nil {
		if errors.Is(err, pberrors.ErrStoreMissing) && allowMissing {
			Logger.Infof("No store at %s yet, starting empty", v.Path())
			return st, passphrase, nil
		}
		if errors.Is(err, pberrors.ErrStoreMissing) {
			return nil, nil, fmt.Errorf("%w: %s does not exist, run %s first",
				pberrors.ErrStoreMissing, v.Path(), ui.Code.Sprint("passbox new"))
		}
		return nil, nil, err
	}

	if dropped > 0 {
		Logger.WarnfAlways("Skipped %d undecodable line(s) in %s", dropped, v.Path())
	}
	Logger.Debugf("Unlocked store with %d record(s)", st.Len())
	return st, passphrase, nil
}

// persistStore re-encrypts the store back to the backing file.
func persistStore(v *vault.Vault, passphrase []byte, st *store.Store) error {
	spinner, cleanup := startSpinner("Encrypting store...")
	defer cleanup()

	if err := v.Persist(passphrase, st); err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save store"
		return Logger.ErrorfAndReturn("failed to persist store: %v", err)
	}
	Logger.Debugf("Persisted %d record(s) to %s", st.Len(), v.Path())
	return nil
}

// printRecord writes one record as an aligned block of labeled lines.
func printRecord(rec record.Record, hidePassword bool) {
	fmt.Printf("%s %s\n", ui.Label.Sprint("Name:"), rec.Name)
	if rec.Username != "" {
		fmt.Printf("%s %s\n", ui.Label.Sprint("Username:"), rec.Username)
	}
	if rec.Password != "" && !hidePassword {
		fmt.Printf("%s %s\n", ui.Label.Sprint("Password:"), rec.Password)
	}
	for _, field := range rec.Fields {
		fmt.Printf("%s %s\n", ui.Label.Sprint(field.Key+":"), field.Value)
	}
}
