package metaclient

import (
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

type insightFiltering struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

// GetAdInsightsByAccountID busca insights no nível de anúncio para o período,
// restritos às campanhas informadas.
func (c *MetaClient) GetAdInsightsByAccountID(
	accountID string,
	filters *domain.InsightFilters,
	campaignIDs []string,
) ([]metadomain.AdInsight, error) {
	requestURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	filtering, err := json.Marshal([]insightFiltering{
		{Field: "campaign.id", Operator: "IN", Value: campaignIDs},
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar o filtro de campanhas")
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "ad_id,ad_name,adset_id,adset_name,campaign_name,spend,actions,action_values")
	params.Add("level", "ad")
	params.Add("time_range", timeRange)
	params.Add("filtering", string(filtering))
	params.Add("limit", "500")

	return getAllPages[metadomain.AdInsight](c, requestURL, params)
}
