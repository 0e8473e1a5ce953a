// Package scheduler contém os serviços de agendamento de rotinas recorrentes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/discord"
	"github.com/vfg2006/creative-performance-api/infrastructure/repository"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/usecases/analyzing"
)

type ReportSyncConfig struct {
	CronSchedule string
	RequestDelay time.Duration
	SyncEnabled  bool
}

// ReportSyncService roda a análise semanal de todos os perfis cadastrados,
// arquiva os relatórios e envia cada um para o webhook do cliente.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	clients             clientstore.Store
	analyzer            analyzing.Analyzer
	notifier            discord.Notifier
	archive             repository.ReportArchiveRepository
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSyncService(
	clients clientstore.Store,
	analyzer analyzing.Analyzer,
	notifier discord.Notifier,
	archive repository.ReportArchiveRepository,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: segunda-feira às 9h
		RequestDelay: time.Duration(cfg.ReportSync.RequestDelaySeconds) * time.Second,
		SyncEnabled:  cfg.ReportSync.Enabled, // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de relatórios semanais carregada")

	return &ReportSyncService{
		scheduler: scheduler,
		clients:   clients,
		analyzer:  analyzer,
		notifier:  notifier,
		archive:   archive,
		config:    syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de relatórios semanais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de relatórios semanais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncReports(); err != nil {
			logrus.WithError(err).Error("Erro na rodada de relatórios semanais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rodada de relatórios semanais: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de relatórios semanais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncReports roda a análise de cada perfil em sequência. A falha de um
// cliente não interrompe os demais; arquivamento e envio são melhor esforço.
func (s *ReportSyncService) SyncReports() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Rodada de relatórios semanais já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando rodada de relatórios semanais")

	profiles, err := s.clients.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar perfis de clientes")
		return err
	}

	for index, profile := range profiles {
		if index > 0 && s.config.RequestDelay > 0 {
			time.Sleep(s.config.RequestDelay)
		}

		s.processClient(profile.Name)
	}

	logrus.WithField("clients", len(profiles)).Info("Rodada de relatórios semanais concluída")

	return nil
}

func (s *ReportSyncService) processClient(clientName string) {
	profile, err := s.clients.Get(clientName)
	if err != nil || profile == nil {
		logrus.WithField("client_name", clientName).WithError(err).Error("Perfil de cliente indisponível")
		return
	}

	report, err := s.analyzer.Analyze(profile)
	if err != nil {
		logrus.WithField("client_name", clientName).WithError(err).Error("Erro na análise do cliente")
		return
	}

	if s.archive != nil {
		if err := s.archive.SaveReport(report); err != nil {
			logrus.WithField("client_name", clientName).WithError(err).Warn("Erro ao arquivar relatório")
		}
	}

	if profile.DiscordWebhook == "" {
		logrus.WithField("client_name", clientName).Info("Perfil sem webhook configurado, envio ignorado")
		return
	}

	result := s.notifier.SendReport(profile.DiscordWebhook, report.ReportText)

	logrus.WithFields(logrus.Fields{
		"client_name": clientName,
		"success":     result.Success,
		"message":     result.Message,
	}).Info("Envio do relatório processado")
}

// TriggerManualSync dispara a rodada fora do agendamento, sem bloquear o
// chamador.
func (s *ReportSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncReports(); err != nil {
			logrus.WithError(err).Error("Erro na rodada manual de relatórios")
		}
	}()
}

// IsSyncRunning retorna se há uma rodada em andamento
func (s *ReportSyncService) IsSyncRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetLastSyncTimes retorna os horários da última rodada
func (s *ReportSyncService) GetLastSyncTimes() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
