package metadomain

import "strconv"

// Action é um par (tipo de evento, valor) das listas "actions" e
// "action_values" de um insight. O Graph API devolve o valor como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// FloatValue converte o valor da ação; ausente ou inválido vale zero.
func (a Action) FloatValue() float64 {
	if a.Value == "" {
		return 0
	}

	value, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0
	}

	return value
}

// AdInsight é um registro bruto de insight no nível de anúncio. Campos que o
// Graph API devolve e o pipeline não consome ficam de fora de propósito.
type AdInsight struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	AdSetID      string   `json:"adset_id"`
	AdSetName    string   `json:"adset_name"`
	CampaignName string   `json:"campaign_name"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions,omitempty"`
	ActionValues []Action `json:"action_values,omitempty"`
}

// SpendValue converte o gasto para float; ausente ou inválido vale zero.
func (i AdInsight) SpendValue() float64 {
	if i.Spend == "" {
		return 0
	}

	value, err := strconv.ParseFloat(i.Spend, 64)
	if err != nil {
		return 0
	}

	return value
}
