package metadomain

import "strconv"

const StatusActive = "ACTIVE"
const StatusPaused = "PAUSED"

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
}

// AdSet representa um conjunto de anúncios. O Graph API devolve o orçamento
// diário como string nas unidades mínimas da moeda da conta.
type AdSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget"`
}

// DailyBudgetValue converte o orçamento diário para inteiro; ausente ou
// inválido vale zero.
func (a AdSet) DailyBudgetValue() int64 {
	if a.DailyBudget == "" {
		return 0
	}

	value, err := strconv.ParseInt(a.DailyBudget, 10, 64)
	if err != nil {
		return 0
	}

	return value
}

type Ad struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
}
