package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/infrastructure/repository"
	"github.com/vfg2006/creative-performance-api/internal/usecases/reconciling"
	"github.com/vfg2006/creative-performance-api/pkg/apiErrors"
)

// RuleServices agrupa as dependências dos handlers de regras automáticas
type RuleServices struct {
	Clients    clientstore.Store
	Reconciler reconciling.Reconciler
	Audit      repository.RuleAuditRepository
}

func isDryRun(r *http.Request) bool {
	return r.URL.Query().Get("dry_run") == "true"
}

// SyncRules alinha os alvos das regras com os criativos ativos do cliente
func SyncRules(services RuleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		result, err := services.Reconciler.Sync(profile, isDryRun(r))
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro na sincronização de regras")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar regras", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// ResetRules recria as regras de pausa e religamento do cliente
func ResetRules(services RuleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		result, err := services.Reconciler.Reset(profile, isDryRun(r))
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro no reset de regras")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao recriar regras", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// RulesStatus fotografa as regras habilitadas da conta do cliente
func RulesStatus(services RuleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		statuses, err := services.Reconciler.Status(profile)
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro ao consultar regras")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar regras", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(statuses)
	}
}

// RulesAudit retorna o rastro das últimas ações do reconciliador no cliente
func RulesAudit(services RuleServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		if services.Audit == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Auditoria de regras não configurada", nil)
			return
		}

		entries, err := services.Audit.ListByClient(profile.Name, historyLimit(r))
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro ao listar auditoria de regras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}
