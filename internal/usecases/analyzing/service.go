package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/creative-performance-api/pkg/utils"
)

// Service implementa o pipeline de análise: coleta, resolução de atividade,
// normalização, agregação, classificação e geração do relatório.
type Service struct {
	cfg     *config.Config
	sources SourceFactory
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		sources: func(accessToken string) InsightSource {
			return meta.New(cfg, metaclient.NewClient(cfg, accessToken))
		},
	}
}

// WithSourceFactory troca a fábrica de integradores; usado nos testes.
func (s *Service) WithSourceFactory(factory SourceFactory) *Service {
	s.sources = factory
	return s
}

// Analyze roda a análise completa de um perfil. Resultados vazios (sem
// campanha ativa, sem dado qualificado) voltam como relatório com status,
// não como erro: são desfechos normais.
func (s *Service) Analyze(profile *domain.ClientProfile) (*domain.AnalysisReport, error) {
	minSpend := profile.MinSpend
	if minSpend == 0 {
		minSpend = s.cfg.Analysis.MinSpend
	}
	lowROASThreshold := profile.LowROASThreshold
	if lowROASThreshold == 0 {
		lowROASThreshold = s.cfg.Analysis.LowROASThreshold
	}
	budgetRulePct := profile.BudgetRulePct
	if budgetRulePct == 0 {
		budgetRulePct = s.cfg.Analysis.BudgetRulePct
	}

	// Janela D7: últimos 7 dias completos, sem o dia atual
	endDate := time.Now().Truncate(24 * time.Hour).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -(s.cfg.Analysis.LookbackDays - 1))
	periodLabel := fmt.Sprintf("D7: %s a %s", startDate.Format("02/01/2006"), endDate.Format("02/01"))

	reportID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	report := &domain.AnalysisReport{
		ID:          reportID,
		ClientName:  profile.Name,
		PeriodLabel: periodLabel,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"client": profile.Name,
		"period": periodLabel,
	}).Info("Iniciando análise de performance de criativos")

	source := s.sources(profile.AccessToken)

	campaigns, err := source.ActiveTargetCampaigns(profile.AdAccountID, profile.TargetCampaigns)
	if err != nil {
		return nil, err
	}

	if len(campaigns) == 0 {
		report.Status = domain.AnalysisStatusNoActiveTargets
		report.StatusMessage = ErrNoActiveTargets.Error()
		return report, nil
	}

	filters := &domain.InsightFilters{StartDate: &startDate, EndDate: &endDate}
	input, err := source.CollectAnalysisInput(profile.AdAccountID, campaigns, filters)
	if err != nil {
		return nil, err
	}

	activeNames, ruleTraces := ResolveActiveCreatives(
		input.AdSetBudgets,
		input.AdStatus,
		input.TodaySpend,
		budgetRulePct,
	)
	report.DebugLines = append(report.DebugLines, ruleTraces...)

	records, excluded := s.buildRecords(input, activeNames)
	logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"excluded": excluded,
	}).Info("Anúncios com gasto no período (excluídos os desligados manualmente)")

	if len(records) == 0 {
		report.Status = domain.AnalysisStatusNoQualifyingData
		report.StatusMessage = ErrNoQualifyingData.Error()
		return report, nil
	}

	metrics := Aggregate(records)
	lowDA, lowVA := Classify(metrics, minSpend, lowROASThreshold)

	report.Status = domain.AnalysisStatusOK
	report.AllMetrics = metrics
	report.LowDA = lowDA
	report.LowVA = lowVA
	report.DebugLines = append(report.DebugLines, qualifiedDebugLines(metrics, minSpend)...)

	report.ExpertAnalysis = reporting.BuildExpertAnalysis(lowDA, lowVA, metrics, lowROASThreshold)
	report.ReportText = reporting.BuildReportText(profile.Name, periodLabel, lowDA, lowVA, report.ExpertAnalysis)

	logrus.WithFields(logrus.Fields{
		"client":  profile.Name,
		"metrics": len(metrics),
		"low_da":  len(lowDA),
		"low_va":  len(lowVA),
	}).Info("Análise concluída")

	return report, nil
}

// buildRecords descarta gasto zero e criativos fora do conjunto ativo, e
// normaliza as ações de cada insight restante.
func (s *Service) buildRecords(input *meta.AnalysisInput, activeNames map[string]bool) ([]RawAdRecord, int) {
	records := make([]RawAdRecord, 0, len(input.Insights))
	excluded := 0

	for _, insight := range input.Insights {
		spend := insight.SpendValue()
		if spend == 0 {
			continue
		}

		if !activeNames[insight.AdName] {
			excluded++
			continue
		}

		normalized := NormalizeInsight(insight)

		records = append(records, RawAdRecord{
			AdName:        insight.AdName,
			AdSetName:     insight.AdSetName,
			Family:        FamilyFromAdSetName(insight.AdSetName),
			Spend:         spend,
			Purchases:     normalized.Purchases,
			Registrations: normalized.Registrations,
			Revenue:       normalized.Revenue,
		})
	}

	return records, excluded
}

// qualifiedDebugLines lista os criativos acima do gasto mínimo, do maior
// gasto para o menor, para o bloco de diagnóstico do relatório.
func qualifiedDebugLines(metrics []domain.CreativeMetric, minSpend float64) []string {
	qualified := make([]domain.CreativeMetric, 0, len(metrics))
	for _, metric := range metrics {
		if metric.Spend >= minSpend {
			qualified = append(qualified, metric)
		}
	}

	sort.Slice(qualified, func(i, j int) bool {
		return qualified[i].Spend > qualified[j].Spend
	})

	lines := make([]string, 0, len(qualified))
	for _, metric := range qualified {
		lines = append(lines, fmt.Sprintf(
			"[%s] %s | gasto: %.0f / receita: %.0f / compras: %d / ROAS: %.0f%% / cadastros: %d",
			metric.Family, metric.AdName, metric.Spend, metric.Revenue,
			metric.Purchases, metric.ROAS, metric.Registrations,
		))
	}

	return lines
}
