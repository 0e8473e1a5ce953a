package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/discord"
	"github.com/vfg2006/creative-performance-api/infrastructure/repository"
	"github.com/vfg2006/creative-performance-api/internal/api"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/scheduler"
	"github.com/vfg2006/creative-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-performance-api/internal/usecases/reconciling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	reportArchiveRepo := repository.NewReportArchiveRepository(pgConn)
	ruleAuditRepo := repository.NewRuleAuditRepository(pgConn)

	clients := clientstore.NewFileStore(cfg.Clients.FilePath)

	authenticator := authenticating.NewService(cfg)
	notifier := discord.NewNotifier(cfg)

	analyzer := analyzing.NewService(cfg)
	reconciler := reconciling.NewService(cfg).WithAudit(ruleAuditRepo)

	// Inicializa o agendador de relatórios semanais
	reportSyncService := scheduler.NewReportSyncService(
		clients,
		analyzer,
		notifier,
		reportArchiveRepo,
		cfg,
	)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios semanais")
	} else {
		logrus.Info("Agendador de relatórios semanais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		clients,
		analyzer,
		reconciler,
		notifier,
		reportArchiveRepo,
		ruleAuditRepo,
		authenticator,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
