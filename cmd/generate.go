package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passbox/internal/configs"
	"github.com/PolarWolf314/passbox/internal/vault"
	"github.com/spf13/cobra"
)

var generateLength int

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "password length (default from config)")
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Prints a random password without touching the store",
	Long: `Generate prints a random password drawn from the system's entropy
source. It never reads or writes the store, so no passphrase is asked.

Lengths above 100 are clamped to 100.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		length := generateLength
		if length <= 0 {
			settings, err := configs.ResolveStoreSettings()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to resolve store settings: %v", err)
			}
			length = settings.GenerateLength
		}

		password, err := vault.GeneratePassword(length)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to generate password: %v", err)
		}
		fmt.Println(password)
		return nil
	},
}
