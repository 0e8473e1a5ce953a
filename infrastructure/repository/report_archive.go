package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

const analysisReportTable = "analysis_report"

type ReportArchiveRepository interface {
	SaveReport(report *domain.AnalysisReport) error
	GetLatestByClient(clientName string) (*domain.AnalysisReport, error)
	ListByClient(clientName string, limit uint64) ([]*domain.AnalysisReport, error)
}

type reportArchiveRepository struct {
	conn *postgres.Connection
}

func NewReportArchiveRepository(conn *postgres.Connection) ReportArchiveRepository {
	return &reportArchiveRepository{
		conn: conn,
	}
}

// SaveReport arquiva uma execução de análise. As listas de métricas vão em
// colunas jsonb; o relatório nunca é atualizado depois de gravado.
func (r *reportArchiveRepository) SaveReport(report *domain.AnalysisReport) error {
	lowDA, err := json.Marshal(report.LowDA)
	if err != nil {
		return err
	}

	lowVA, err := json.Marshal(report.LowVA)
	if err != nil {
		return err
	}

	allMetrics, err := json.Marshal(report.AllMetrics)
	if err != nil {
		return err
	}

	insertSQL, args, err := squirrel.
		Insert(analysisReportTable).
		Columns(
			"id",
			"client_name",
			"period_label",
			"start_date",
			"end_date",
			"status",
			"status_message",
			"low_da",
			"low_va",
			"all_metrics",
			"expert_analysis",
			"report_text",
			"created_at",
		).
		Values(
			report.ID,
			report.ClientName,
			report.PeriodLabel,
			report.StartDate,
			report.EndDate,
			string(report.Status),
			report.StatusMessage,
			lowDA,
			lowVA,
			allMetrics,
			report.ExpertAnalysis,
			report.ReportText,
			report.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(insertSQL, args...); err != nil {
		logrus.WithField("report_id", report.ID).WithError(err).Error("Falha ao arquivar relatório de análise")
		return err
	}

	return nil
}

func (r *reportArchiveRepository) GetLatestByClient(clientName string) (*domain.AnalysisReport, error) {
	selectSQL, args, err := r.selectReports().
		Where(squirrel.Eq{"client_name": clientName}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(selectSQL, args...)

	report, err := r.deserializeReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return report, nil
}

func (r *reportArchiveRepository) ListByClient(clientName string, limit uint64) ([]*domain.AnalysisReport, error) {
	selectSQL, args, err := r.selectReports().
		Where(squirrel.Eq{"client_name": clientName}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*domain.AnalysisReport, 0)
	for rows.Next() {
		report, err := r.deserializeReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func (r *reportArchiveRepository) selectReports() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id",
			"client_name",
			"period_label",
			"start_date",
			"end_date",
			"status",
			"status_message",
			"low_da",
			"low_va",
			"all_metrics",
			"expert_analysis",
			"report_text",
			"created_at",
		).
		From(analysisReportTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *reportArchiveRepository) deserializeReport(row rowScanner) (*domain.AnalysisReport, error) {
	report := &domain.AnalysisReport{}

	var lowDA, lowVA, allMetrics []byte

	if err := row.Scan(
		&report.ID,
		&report.ClientName,
		&report.PeriodLabel,
		&report.StartDate,
		&report.EndDate,
		&report.Status,
		&report.StatusMessage,
		&lowDA,
		&lowVA,
		&allMetrics,
		&report.ExpertAnalysis,
		&report.ReportText,
		&report.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lowDA, &report.LowDA); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lowVA, &report.LowVA); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(allMetrics, &report.AllMetrics); err != nil {
		return nil, err
	}

	return report, nil
}
