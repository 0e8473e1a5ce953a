package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Mostra as regras habilitadas de cada cliente",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := selectedProfiles()
		if err != nil {
			return err
		}

		for _, profile := range profiles {
			statuses, err := reconciler.Status(profile)
			if err != nil {
				fmt.Printf("[%s] erro: %v\n", profile.Name, err)
				continue
			}

			fmt.Printf("[%s] %d regra(s) habilitada(s)\n", profile.Name, len(statuses))
			for _, status := range statuses {
				marker := " "
				if status.Managed {
					marker = "*"
				}
				fmt.Printf("  %s %-60s %d anúncio(s)\n", marker, status.RuleName, status.Targets)
			}
		}

		return nil
	},
}
