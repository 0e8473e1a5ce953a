// Package cli implementa o utilitário de linha de comando rulectl, usado
// para operar as regras automáticas sem subir o servidor HTTP.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/internal/usecases/reconciling"
)

var (
	clientName string
	dryRun     bool

	clients    clientstore.Store
	reconciler reconciling.Reconciler
)

var rootCmd = &cobra.Command{
	Use:   "rulectl",
	Short: "Opera as regras automáticas de pausa e religamento dos clientes",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if reconciler != nil {
			return nil
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			logLevel = logrus.InfoLevel
		}
		logrus.SetLevel(logLevel)

		clients = clientstore.NewFileStore(cfg.Clients.FilePath)
		reconciler = reconciling.NewService(cfg)
		return nil
	},
}

// Execute roda o comando raiz e encerra o processo em caso de erro.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&clientName, "client", "", "Opera apenas o cliente informado (default: todos)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Mostra o que seria feito sem alterar nada")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// selectedProfiles resolve os perfis alvo da execução a partir da flag
// --client.
func selectedProfiles() ([]*domain.ClientProfile, error) {
	if clientName != "" {
		profile, err := clients.Get(clientName)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, fmt.Errorf("cliente %q não encontrado", clientName)
		}
		return []*domain.ClientProfile{profile}, nil
	}

	return clients.List()
}
