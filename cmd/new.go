package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passbox/internal/configs"
	"github.com/PolarWolf314/passbox/internal/record"
	"github.com/PolarWolf314/passbox/internal/terminal"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Creates a record, prompting for its details",
	Long: `New prompts for a name, username, and password and stores the record.
Leaving the password blank generates a random one and prints it once.

If a record with the same name already exists (ignoring case) it is
replaced. This is also the only command that will create the backing
file when it does not exist yet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting new command")

		v, settings, err := openVault()
		if err != nil {
			return err
		}

		st, passphrase, err := unlockStore(v, true)
		if err != nil {
			return err
		}
		defer vault.Wipe(passphrase)

		name, err := terminal.ReadLine("Name", "")
		if err != nil {
			return err
		}
		username, err := terminal.ReadLine("Username", "")
		if err != nil {
			return err
		}
		password, err := terminal.ReadMasked("Password (blank to generate): ")
		if err != nil {
			return err
		}

		generated := false
		if password == "" {
			password, err = vault.GeneratePassword(settings.GenerateLength)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to generate password: %v", err)
			}
			generated = true
		}

		rec := record.Record{Name: name, Username: username, Password: password}
		if err := st.Upsert(rec); err != nil {
			return err
		}

		// The store file carries an identity the first time anything is saved.
		if _, err := configs.EnsureUserConfig(); err != nil {
			return Logger.ErrorfAndReturn("failed to ensure user config: %v", err)
		}

		if err := persistStore(v, passphrase, st); err != nil {
			return err
		}

		if generated {
			fmt.Printf("%s %s\n", ui.Label.Sprint("Generated password:"), password)
		}
		fmt.Println(ui.Success.Sprint("✓") + " Saved " + ui.Highlight.Sprint(rec.Name))
		return nil
	},
}
