package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/discord"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

type stubStore struct {
	profiles []*domain.ClientProfile
	listErr  error
}

func (s *stubStore) List() ([]*domain.ClientProfile, error) {
	return s.profiles, s.listErr
}

func (s *stubStore) Get(name string) (*domain.ClientProfile, error) {
	for _, profile := range s.profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return nil, nil
}

func (s *stubStore) Save(profile *domain.ClientProfile) error { return nil }
func (s *stubStore) Delete(name string) error                 { return nil }

type stubAnalyzer struct {
	analyzed []string
	failFor  string
}

func (a *stubAnalyzer) Analyze(profile *domain.ClientProfile) (*domain.AnalysisReport, error) {
	if profile.Name == a.failFor {
		return nil, errors.New("falha simulada na análise")
	}

	a.analyzed = append(a.analyzed, profile.Name)
	return &domain.AnalysisReport{
		ID:         "run_" + profile.Name,
		ClientName: profile.Name,
		Status:     domain.AnalysisStatusOK,
		ReportText: "relatório de " + profile.Name,
	}, nil
}

type stubNotifier struct {
	sent map[string]string
}

func (n *stubNotifier) SendReport(webhookURL, reportText string) discord.DeliveryResult {
	if n.sent == nil {
		n.sent = map[string]string{}
	}
	n.sent[webhookURL] = reportText
	return discord.DeliveryResult{Success: true, Message: "ok"}
}

type stubArchive struct {
	saved []string
}

func (a *stubArchive) SaveReport(report *domain.AnalysisReport) error {
	a.saved = append(a.saved, report.ID)
	return nil
}

func (a *stubArchive) GetLatestByClient(clientName string) (*domain.AnalysisReport, error) {
	return nil, nil
}

func (a *stubArchive) ListByClient(clientName string, limit uint64) ([]*domain.AnalysisReport, error) {
	return nil, nil
}

func testSyncService(store *stubStore, analyzer *stubAnalyzer, notifier *stubNotifier, archive *stubArchive) *ReportSyncService {
	cfg := &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 9 * * MON",
			Enabled:      false,
		},
	}

	return NewReportSyncService(store, analyzer, notifier, archive, cfg)
}

func TestSyncReports(t *testing.T) {
	t.Run("Analisa todos os perfis, arquiva e envia para quem tem webhook", func(t *testing.T) {
		store := &stubStore{profiles: []*domain.ClientProfile{
			{Name: "acme", DiscordWebhook: "https://discord.test/acme"},
			{Name: "beta"},
		}}
		analyzer := &stubAnalyzer{}
		notifier := &stubNotifier{}
		archive := &stubArchive{}

		service := testSyncService(store, analyzer, notifier, archive)
		require.NoError(t, service.SyncReports())

		assert.Equal(t, []string{"acme", "beta"}, analyzer.analyzed)
		assert.Equal(t, []string{"run_acme", "run_beta"}, archive.saved)

		// Perfil sem webhook não gera envio
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "relatório de acme", notifier.sent["https://discord.test/acme"])
	})

	t.Run("Falha na análise de um cliente não interrompe os demais", func(t *testing.T) {
		store := &stubStore{profiles: []*domain.ClientProfile{
			{Name: "quebrado", DiscordWebhook: "https://discord.test/quebrado"},
			{Name: "saudavel", DiscordWebhook: "https://discord.test/saudavel"},
		}}
		analyzer := &stubAnalyzer{failFor: "quebrado"}
		notifier := &stubNotifier{}
		archive := &stubArchive{}

		service := testSyncService(store, analyzer, notifier, archive)
		require.NoError(t, service.SyncReports())

		assert.Equal(t, []string{"saudavel"}, analyzer.analyzed)
		require.Len(t, notifier.sent, 1)
		assert.Contains(t, notifier.sent, "https://discord.test/saudavel")
	})

	t.Run("Erro ao listar perfis volta como erro da rodada", func(t *testing.T) {
		store := &stubStore{listErr: errors.New("arquivo indisponível")}
		service := testSyncService(store, &stubAnalyzer{}, &stubNotifier{}, &stubArchive{})

		assert.Error(t, service.SyncReports())
	})

	t.Run("Rodada registra horários e libera a flag de execução", func(t *testing.T) {
		store := &stubStore{profiles: []*domain.ClientProfile{{Name: "acme"}}}
		service := testSyncService(store, &stubAnalyzer{}, &stubNotifier{}, &stubArchive{})

		require.NoError(t, service.SyncReports())

		assert.False(t, service.IsSyncRunning())

		startedAt, completedAt := service.GetLastSyncTimes()
		assert.False(t, startedAt.IsZero())
		assert.False(t, completedAt.IsZero())
		assert.False(t, completedAt.Before(startedAt))
	})
}

func TestStartDisabled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := testSyncService(&stubStore{}, &stubAnalyzer{}, &stubNotifier{}, &stubArchive{})

	require.NoError(t, service.Start(ctx))
	assert.False(t, service.IsSyncRunning())
}
