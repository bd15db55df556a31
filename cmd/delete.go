package cmd

import (
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/terminal"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Removes a record from the store",
	Long: `Delete removes one record by name after asking for confirmation.
Declining leaves the store untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting delete command for: %s", name)

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

		if !deleteYes {
			if !terminal.Confirm(fmt.Sprintf("Delete %s?", ui.Highlight.Sprint(rec.Name))) {
				Logger.Infof("Delete of %s declined", rec.Name)
				return pberrors.ErrUserAborted
			}
		}

		st.Remove(rec.Name)
		if err := persistStore(v, passphrase, st); err != nil {
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Deleted " + ui.Highlight.Sprint(rec.Name))
		return nil
	},
}
