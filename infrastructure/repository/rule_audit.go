package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

const ruleSyncAuditTable = "rule_sync_audit"

type RuleAuditRepository interface {
	Record(entry domain.RuleAuditEntry) error
	ListByClient(clientName string, limit uint64) ([]domain.RuleAuditEntry, error)
}

type ruleAuditRepository struct {
	conn *postgres.Connection
}

func NewRuleAuditRepository(conn *postgres.Connection) RuleAuditRepository {
	return &ruleAuditRepository{
		conn: conn,
	}
}

func (r *ruleAuditRepository) Record(entry domain.RuleAuditEntry) error {
	insertSQL, args, err := squirrel.
		Insert(ruleSyncAuditTable).
		Columns(
			"id",
			"client_name",
			"rule_name",
			"action",
			"added_ads",
			"removed_ads",
			"dry_run",
			"message",
			"created_at",
		).
		Values(
			entry.ID,
			entry.ClientName,
			entry.RuleName,
			entry.Action,
			pq.Array(entry.AddedAds),
			pq.Array(entry.RemovedAds),
			entry.DryRun,
			entry.Message,
			entry.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(insertSQL, args...); err != nil {
		logrus.WithFields(logrus.Fields{
			"client_name": entry.ClientName,
			"rule_name":   entry.RuleName,
		}).WithError(err).Error("Falha ao gravar auditoria de regra")
		return err
	}

	return nil
}

func (r *ruleAuditRepository) ListByClient(clientName string, limit uint64) ([]domain.RuleAuditEntry, error) {
	selectSQL, args, err := squirrel.
		Select(
			"id",
			"client_name",
			"rule_name",
			"action",
			"added_ads",
			"removed_ads",
			"dry_run",
			"message",
			"created_at",
		).
		From(ruleSyncAuditTable).
		Where(squirrel.Eq{"client_name": clientName}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(selectSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.RuleAuditEntry, 0)
	for rows.Next() {
		var entry domain.RuleAuditEntry

		if err := rows.Scan(
			&entry.ID,
			&entry.ClientName,
			&entry.RuleName,
			&entry.Action,
			pq.Array(&entry.AddedAds),
			pq.Array(&entry.RemovedAds),
			&entry.DryRun,
			&entry.Message,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
