package domain

import "time"

// AnalysisStatus indica o desfecho de uma execução de análise.
type AnalysisStatus string

const (
	AnalysisStatusOK               AnalysisStatus = "ok"
	AnalysisStatusNoActiveTargets  AnalysisStatus = "sem_campanhas_ativas"
	AnalysisStatusNoQualifyingData AnalysisStatus = "sem_dados_qualificados"
)

// AnalysisReport é o resultado completo de uma execução de análise para um
// cliente. É imutável depois de criado; cada execução gera um novo relatório.
type AnalysisReport struct {
	ID             string           `json:"id"`
	ClientName     string           `json:"client_name"`
	PeriodLabel    string           `json:"period_label"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	Status         AnalysisStatus   `json:"status"`
	StatusMessage  string           `json:"status_message,omitempty"`
	LowDA          []CreativeMetric `json:"low_da"`
	LowVA          []CreativeMetric `json:"low_va"`
	AllMetrics     []CreativeMetric `json:"all_metrics"`
	ExpertAnalysis string           `json:"expert_analysis"`
	ReportText     string           `json:"report_text"`
	DebugLines     []string         `json:"debug_lines,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
