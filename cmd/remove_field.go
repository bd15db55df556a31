package cmd

import (
	"errors"
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var removeFieldCmd = &cobra.Command{
	Use:   "remove-field <name> <key>",
	Short: "Removes a key:value field from a record",
	Long: `Remove-field deletes one extension field from a record by key.
If the key appears more than once only the first occurrence goes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, key := args[0], args[1]
		Logger.Infof("Starting remove-field command for %s on %s", key, name)

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

		if err := st.RemoveField(rec.Name, key); err != nil {
			if errors.Is(err, pberrors.ErrFieldNotFound) {
				return fmt.Errorf("%w: %s has no field %s",
					pberrors.ErrFieldNotFound, ui.Highlight.Sprint(rec.Name), ui.Highlight.Sprint(key))
			}
			return err
		}
		if err := persistStore(v, passphrase, st); err != nil {
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Removed " + ui.Highlight.Sprint(key) + " from " + ui.Highlight.Sprint(rec.Name))
		return nil
	},
}
