package cmd

import (
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/terminal"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Changes the username or password of an existing record",
	Long: `Update prompts for a new username and password for an existing record.
Pressing enter on either prompt keeps the current value, and extension
fields are carried over untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting update command for: %s", name)

		v, _, err := openVault()
		if err != nil {
			return err
		}

		st, passphrase, err := unlockStore(v, false)
		if err != nil {
			return err
		}
		defer vault.Wipe(passphrase)

		rec, ok := st.FindByName(name)
		if !ok {
			return fmt.Errorf("%w: no record named %s", pberrors.ErrNotFound, ui.Highlight.Sprint(name))
		}

		username, err := terminal.ReadLine("Username", rec.Username)
		if err != nil {
			return err
		}
		password, err := terminal.ReadMasked("Password (blank to keep current): ")
		if err != nil {
			return err
		}

		rec.Username = username
		if password != "" {
			rec.Password = password
		}

		if err := st.Upsert(rec); err != nil {
			return err
		}
		if err := persistStore(v, passphrase, st); err != nil {
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Updated " + ui.Highlight.Sprint(rec.Name))
		return nil
	},
}
