package cmd

import (
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var getCopy bool

func init() {
	getCmd.Flags().BoolVarP(&getCopy, "copy", "c", false, "copy the password to the clipboard instead of printing it")
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Shows a single record by its exact name",
	Long: `Get looks up one record by name. The name must match exactly, ignoring
case only: 'github' finds "GitHub" but never "github-work".

With --copy the password goes to the system clipboard and is left out
of the printed block.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting get command for: %s", name)

		v, _, err := openVault()
		if err != nil {
			return err
		}

		st, passphrase, err := unlockStore(v, false)
		if err != nil {
			return err
		}
		vault.Wipe(passphrase)

		rec, ok := st.FindByName(name)
		if !ok {
			return fmt.Errorf("%w: no record named %s", pberrors.ErrNotFound, ui.Highlight.Sprint(name))
		}

		printRecord(rec, getCopy)
		if getCopy {
			if err := clipboard.WriteAll(rec.Password); err != nil {
				return Logger.ErrorfAndReturn("failed to copy password to clipboard: %v", err)
			}
			fmt.Println(ui.Success.Sprint("✓") + " Password copied to clipboard")
		}
		return nil
	},
}
