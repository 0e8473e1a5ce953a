package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Recria as regras de pausa e religamento do dia",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := selectedProfiles()
		if err != nil {
			return err
		}

		for _, profile := range profiles {
			result, err := reconciler.Reset(profile, dryRun)
			if err != nil {
				fmt.Printf("[%s] erro: %v\n", profile.Name, err)
				continue
			}

			printResult(result)
		}

		return nil
	},
}
