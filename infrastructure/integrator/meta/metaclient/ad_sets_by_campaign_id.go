package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdSetsByCampaignID(campaignID string) ([]metadomain.AdSet, error) {
	requestURL := fmt.Sprintf("%s/%s/adsets", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,name,effective_status,daily_budget")

	return getAllPages[metadomain.AdSet](c, requestURL, params)
}
