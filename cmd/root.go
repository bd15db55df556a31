package cmd

import (
	logger "github.com/PolarWolf314/passbox/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "passbox",
		Short: "passbox - a password manager for a single encrypted file",
		Long: `Passbox stores credential records in one symmetrically encrypted file
and provides search, retrieval, and record mutation over it.

Every command unlocks the store with your master passphrase, applies one
change, re-encrypts, and exits. Nothing stays unlocked between commands.

Records hold a name, username, password, and any number of key:value
extension fields (URLs, notes, one-time code seeds).

Configuration:
  PASSBOX_LOCATION     backing file path (default ~/.passbox/store.pbx)
  PASSBOX_ASYMMETRIC   "true" encrypts to an RSA key pair instead of a passphrase
  PASSBOX_RECIPIENT    key pair name for asymmetric mode (empty = yourself)

Run 'passbox help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing passbox with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(addFieldCmd)
	rootCmd.AddCommand(removeFieldCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(keygenCmd)
}

// Execute runs the root command. Errors are returned to main, which owns
// the process exit code.
func Execute() error {
	return rootCmd.Execute()
}
