package domain

import "time"

// RuleAuditEntry registra uma ação do reconciliador sobre uma regra
// automática, inclusive em modo dry-run.
type RuleAuditEntry struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	RuleName   string    `json:"rule_name"`
	Action     string    `json:"action"`
	AddedAds   []string  `json:"added_ads"`
	RemovedAds []string  `json:"removed_ads"`
	DryRun     bool      `json:"dry_run"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
