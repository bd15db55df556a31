package cmd

import (
	"errors"
	"os"

	"github.com/PolarWolf314/passbox/internal/configs"
	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var keygenRecipient string

func init() {
	keygenCmd.Flags().StringVarP(&keygenRecipient, "recipient", "r", "", "name the key pair (default: your own)")
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Creates an RSA key pair for asymmetric mode",
	Long: `Keygen creates the RSA key pair that asymmetric mode encrypts to.
With PASSBOX_ASYMMETRIC=true every save wraps the store key for the
recipient's public key, and unlocking uses the private key instead of
a passphrase.

Existing key pairs are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command for recipient: %s", keygenRecipient)

		keysPath := configs.UserPassboxSettings.KeysPath
		spinner, cleanup := startSpinner("Generating key pair...")
		defer cleanup()

		if err := vault.GenerateKeyPair(keysPath, keygenRecipient); err != nil {
			if errors.Is(err, os.ErrExist) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " A key pair with that name already exists in " + ui.Path.Sprint(keysPath)
				return pberrors.ErrUserAborted
			}
			return Logger.ErrorfAndReturn("failed to generate key pair: %v", err)
		}

		privatePath, publicPath := vault.KeyPairPaths(keysPath, keygenRecipient)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Key pair created\n" +
			ui.Info.Sprint("→") + " Private key: " + ui.Path.Sprint(privatePath) + "\n" +
			ui.Info.Sprint("→") + " Public key:  " + ui.Path.Sprint(publicPath)
		return nil
	},
}
