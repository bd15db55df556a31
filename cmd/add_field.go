package cmd

import (
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/terminal"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var addFieldCmd = &cobra.Command{
	Use:   "add-field <name>",
	Short: "Attaches a key:value field to a record",
	Long: `Add-field prompts for a key and a value and appends them to a record
as an extension field. Fields hold anything the fixed columns don't:
URLs, notes, recovery codes, one-time code seeds.

The same key may appear more than once on a record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting add-field command for: %s", name)

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

		key, err := terminal.ReadLine("Key", "")
		if err != nil {
			return err
		}
		value, err := terminal.ReadLine("Value", "")
		if err != nil {
			return err
		}

		if err := st.AddField(rec.Name, key, value); err != nil {
			return err
		}
		if err := persistStore(v, passphrase, st); err != nil {
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Added " + ui.Highlight.Sprint(key) + " to " + ui.Highlight.Sprint(rec.Name))
		return nil
	},
}
