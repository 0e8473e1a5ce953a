package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/internal/config"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

type Client interface {
	GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByCampaignID(campaignID string) ([]metadomain.AdSet, error)
	GetAdsByAdSetID(adSetID string) ([]metadomain.Ad, error)
	GetAdInsightsByAccountID(accountID string, filters *domain.InsightFilters, campaignIDs []string) ([]metadomain.AdInsight, error)
	GetAdRulesByAccountID(accountID string) ([]metadomain.AdRule, error)
	CreateAdRule(accountID string, params CreateAdRuleParams) error
	UpdateAdRuleTargets(ruleID string, spec *metadomain.EvaluationSpec) error
	DeleteAdRule(ruleID string) error
}

// MetaClient é a sessão de um único perfil de cliente contra o Graph API.
// Cada perfil recebe a sua própria instância com o seu token; nada é
// compartilhado entre perfis.
type MetaClient struct {
	Cfg         *config.Config
	AccessToken string
	httpClient  *http.Client
}

func NewClient(cfg *config.Config, accessToken string) Client {
	client := &MetaClient{
		Cfg:         cfg,
		AccessToken: accessToken,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
	return client
}
