package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Preenchidos via ldflags no build
var (
	Version = "dev"
	Commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão do utilitário",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "version: %s\ncommit: %s\n", Version, Commit)
	},
}
