package domain

// ClientProfile é o perfil de configuração de um cliente de mídia paga.
// O núcleo de análise recebe o perfil já carregado e nunca o altera.
type ClientProfile struct {
	Name             string   `json:"client_name"`
	AccessToken      string   `json:"access_token"`
	AdAccountID      string   `json:"ad_account_id"`
	TargetCampaigns  []string `json:"target_campaigns"`
	MinSpend         float64  `json:"min_spend"`
	LowROASThreshold float64  `json:"low_roas_threshold"`
	BudgetRulePct    float64  `json:"budget_rule_pct"`
	DiscordWebhook   string   `json:"discord_webhook,omitempty"`
}
