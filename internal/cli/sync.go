package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/creative-performance-api/internal/usecases/reconciling"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Alinha os alvos das regras com os criativos ativos",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := selectedProfiles()
		if err != nil {
			return err
		}

		for _, profile := range profiles {
			result, err := reconciler.Sync(profile, dryRun)
			if err != nil {
				fmt.Printf("[%s] erro: %v\n", profile.Name, err)
				continue
			}

			printResult(result)
		}

		return nil
	},
}

func printResult(result *reconciling.Result) {
	header := fmt.Sprintf("[%s]", result.ClientName)
	if result.DryRun {
		header += " (dry-run)"
	}
	fmt.Printf("%s %d regra(s) processada(s), %d alteração(ões)\n", header, len(result.Outcomes), result.Changes)

	for _, outcome := range result.Outcomes {
		line := fmt.Sprintf("  %-12s %s", outcome.Action, outcome.RuleName)

		if len(outcome.Added) > 0 {
			line += fmt.Sprintf(" +[%s]", strings.Join(outcome.Added, ", "))
		}
		if len(outcome.Removed) > 0 {
			line += fmt.Sprintf(" -[%s]", strings.Join(outcome.Removed, ", "))
		}
		if outcome.Message != "" {
			line += fmt.Sprintf(" (%s)", outcome.Message)
		}

		fmt.Println(line)
	}
}
