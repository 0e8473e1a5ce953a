package domain

import "time"

// InsightFilters delimita o intervalo de datas de uma consulta de insights.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
