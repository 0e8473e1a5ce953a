package metaclient

import (
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdsByAdSetID(adSetID string) ([]metadomain.Ad, error) {
	requestURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("fields", "id,name,effective_status")

	return getAllPages[metadomain.Ad](c, requestURL, params)
}
