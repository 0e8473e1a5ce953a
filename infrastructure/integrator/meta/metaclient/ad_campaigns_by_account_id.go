package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	requestURL := fmt.Sprintf("%s/act_%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "id,name,effective_status")

	return getAllPages[metadomain.Campaign](c, requestURL, params)
}
