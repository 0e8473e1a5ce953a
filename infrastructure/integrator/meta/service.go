package meta

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

// AdKey identifica um anúncio pelo par (nome, conjunto). O mesmo nome de
// criativo pode aparecer em mais de um conjunto.
type AdKey struct {
	AdName  string
	AdSetID string
}

// AnalysisInput é tudo o que o pipeline de análise precisa de uma conta:
// insights do período, orçamentos, status e gasto de hoje por anúncio.
type AnalysisInput struct {
	Campaigns    []metadomain.Campaign
	Insights     []metadomain.AdInsight
	AdSetBudgets map[string]int64
	AdStatus     map[AdKey]string
	TodaySpend   map[AdKey]float64
}

// AdSetGroup é um conjunto de anúncios ativo com os seus criativos ativos,
// na forma que o reconciliador de regras consome.
type AdSetGroup struct {
	CampaignName string
	AdSetName    string
	DailyBudget  int64
	Ads          []metadomain.Ad
}

// MetaIntegrator agrega as chamadas ao Graph API de um único perfil,
// aplicando retry com backoff em todas elas.
type MetaIntegrator struct {
	cfg       *config.Config
	Client    metaclient.Client
	retryOpts metaclient.RetryOptions

	// pausa entre chamadas encadeadas, para não estourar o rate limit
	requestDelay time.Duration
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	retryOpts := metaclient.RetryOptions{
		MaxAttempts: cfg.Analysis.RetryMaxAttempts,
		InitialWait: time.Duration(cfg.Analysis.RetryInitialWaitS) * time.Second,
		OnProgress: func(message string) {
			logrus.Info(message)
		},
	}

	return &MetaIntegrator{
		cfg:          cfg,
		Client:       client,
		retryOpts:    retryOpts,
		requestDelay: time.Second,
	}
}

// WithRetryOptions troca as opções de retry; usado nos testes para não
// dormir de verdade.
func (s *MetaIntegrator) WithRetryOptions(opts metaclient.RetryOptions) *MetaIntegrator {
	s.retryOpts = opts
	s.requestDelay = 0
	return s
}

// ActiveTargetCampaigns devolve as campanhas-alvo do perfil que estão ativas.
func (s *MetaIntegrator) ActiveTargetCampaigns(accountID string, targetNames []string) ([]metadomain.Campaign, error) {
	campaigns, err := metaclient.WithRetry(func() ([]metadomain.Campaign, error) {
		return s.Client.GetAdCampaignsByAccountID(accountID)
	}, s.retryOpts)
	if err != nil {
		return nil, err
	}

	active := make([]metadomain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.EffectiveStatus != metadomain.StatusActive {
			continue
		}
		if !slices.Contains(targetNames, campaign.Name) {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id":   campaign.ID,
			"campaign_name": campaign.Name,
		}).Info("Campanha-alvo ativa encontrada")

		active = append(active, campaign)
	}

	return active, nil
}

// CollectAnalysisInput coleta, para as campanhas dadas, os insights do
// período e os dados de hoje (orçamento, status e gasto por anúncio) usados
// na resolução de atividade.
func (s *MetaIntegrator) CollectAnalysisInput(
	accountID string,
	campaigns []metadomain.Campaign,
	filters *domain.InsightFilters,
) (*AnalysisInput, error) {
	campaignIDs := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignIDs = append(campaignIDs, campaign.ID)
	}

	insights, err := metaclient.WithRetry(func() ([]metadomain.AdInsight, error) {
		return s.Client.GetAdInsightsByAccountID(accountID, filters, campaignIDs)
	}, s.retryOpts)
	if err != nil {
		return nil, err
	}

	logrus.WithField("insights", len(insights)).Info("Insights do período coletados")

	input := &AnalysisInput{
		Campaigns:    campaigns,
		Insights:     insights,
		AdSetBudgets: make(map[string]int64),
		AdStatus:     make(map[AdKey]string),
		TodaySpend:   make(map[AdKey]float64),
	}

	for _, campaign := range campaigns {
		adSets, err := metaclient.WithRetry(func() ([]metadomain.AdSet, error) {
			return s.Client.GetAdSetsByCampaignID(campaign.ID)
		}, s.retryOpts)
		if err != nil {
			return nil, err
		}
		s.delay()

		for _, adSet := range adSets {
			if adSet.EffectiveStatus != metadomain.StatusActive {
				continue
			}

			input.AdSetBudgets[adSet.ID] = adSet.DailyBudgetValue()

			ads, err := metaclient.WithRetry(func() ([]metadomain.Ad, error) {
				return s.Client.GetAdsByAdSetID(adSet.ID)
			}, s.retryOpts)
			if err != nil {
				return nil, err
			}
			s.delay()

			for _, ad := range ads {
				input.AdStatus[AdKey{AdName: ad.Name, AdSetID: adSet.ID}] = ad.EffectiveStatus
			}
		}
	}

	today := time.Now()
	todayFilters := &domain.InsightFilters{StartDate: &today, EndDate: &today}

	todayInsights, err := metaclient.WithRetry(func() ([]metadomain.AdInsight, error) {
		return s.Client.GetAdInsightsByAccountID(accountID, todayFilters, campaignIDs)
	}, s.retryOpts)
	if err != nil {
		return nil, err
	}

	for _, insight := range todayInsights {
		key := AdKey{AdName: insight.AdName, AdSetID: insight.AdSetID}
		input.TodaySpend[key] = insight.SpendValue()
	}

	return input, nil
}

// ActiveAdSetGroups devolve os conjuntos ativos das campanhas-alvo com os
// seus criativos ativos. Conjuntos sem criativo ativo ficam de fora.
func (s *MetaIntegrator) ActiveAdSetGroups(accountID string, targetNames []string) ([]AdSetGroup, error) {
	campaigns, err := s.ActiveTargetCampaigns(accountID, targetNames)
	if err != nil {
		return nil, err
	}

	groups := make([]AdSetGroup, 0)
	for _, campaign := range campaigns {
		adSets, err := metaclient.WithRetry(func() ([]metadomain.AdSet, error) {
			return s.Client.GetAdSetsByCampaignID(campaign.ID)
		}, s.retryOpts)
		if err != nil {
			return nil, err
		}
		s.delay()

		for _, adSet := range adSets {
			if adSet.EffectiveStatus != metadomain.StatusActive {
				continue
			}

			ads, err := metaclient.WithRetry(func() ([]metadomain.Ad, error) {
				return s.Client.GetAdsByAdSetID(adSet.ID)
			}, s.retryOpts)
			if err != nil {
				return nil, err
			}
			s.delay()

			activeAds := make([]metadomain.Ad, 0, len(ads))
			for _, ad := range ads {
				if ad.EffectiveStatus == metadomain.StatusActive {
					activeAds = append(activeAds, ad)
				}
			}

			if len(activeAds) == 0 {
				continue
			}

			groups = append(groups, AdSetGroup{
				CampaignName: campaign.Name,
				AdSetName:    adSet.Name,
				DailyBudget:  adSet.DailyBudgetValue(),
				Ads:          activeAds,
			})
		}
	}

	return groups, nil
}

// EnabledRules devolve as regras ENABLED da biblioteca da conta.
func (s *MetaIntegrator) EnabledRules(accountID string) ([]metadomain.AdRule, error) {
	rules, err := metaclient.WithRetry(func() ([]metadomain.AdRule, error) {
		return s.Client.GetAdRulesByAccountID(accountID)
	}, s.retryOpts)
	if err != nil {
		return nil, err
	}

	enabled := make([]metadomain.AdRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Status == metadomain.RuleStatusEnabled {
			enabled = append(enabled, rule)
		}
	}

	return enabled, nil
}

func (s *MetaIntegrator) UpdateRuleTargets(ruleID string, spec *metadomain.EvaluationSpec) error {
	err := s.Client.UpdateAdRuleTargets(ruleID, spec)
	s.delay()
	return err
}

func (s *MetaIntegrator) DeleteRule(ruleID string) error {
	err := s.Client.DeleteAdRule(ruleID)
	s.delay()
	return err
}

func (s *MetaIntegrator) CreateRule(accountID string, params metaclient.CreateAdRuleParams) error {
	err := s.Client.CreateAdRule(accountID, params)
	s.delay()
	return err
}

func (s *MetaIntegrator) delay() {
	if s.requestDelay > 0 {
		time.Sleep(s.requestDelay)
	}
}
