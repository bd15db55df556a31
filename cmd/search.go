package cmd

import (
	"errors"
	"fmt"

	pberrors "github.com/PolarWolf314/passbox/internal/errors"
	"github.com/PolarWolf314/passbox/internal/ui"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Finds every record matching a pattern",
	Long: `Search decrypts the store and prints every record whose encoded line
matches the given pattern. Matching is a case-insensitive regular
expression over the full line, so a pattern can hit names, usernames,
or extension field values alike.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		Logger.Infof("Starting search command with pattern: %s", pattern)

		v, _, err := openVault()
		if err != nil {
			return err
		}

		st, passphrase, err := unlockStore(v, false)
		if err != nil {
			return err
		}
		vault.Wipe(passphrase)

		matches, err := st.Search(pattern)
		if err != nil {
			if errors.Is(err, pberrors.ErrNotFound) {
				return fmt.Errorf("%w: nothing matches %s", pberrors.ErrNotFound, ui.Highlight.Sprint(pattern))
			}
			return err
		}

		Logger.Debugf("Pattern matched %d record(s)", len(matches))
		for i, rec := range matches {
			if i > 0 {
				fmt.Println()
			}
			printRecord(rec, false)
		}
		return nil
	},
}
