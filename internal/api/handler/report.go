package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/discord"
	"github.com/vfg2006/creative-performance-api/infrastructure/repository"
	"github.com/vfg2006/creative-performance-api/internal/domain"
	"github.com/vfg2006/creative-performance-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-performance-api/pkg/apiErrors"
)

// ReportServices agrupa as dependências dos handlers de relatório
type ReportServices struct {
	Clients  clientstore.Store
	Analyzer analyzing.Analyzer
	Notifier discord.Notifier
	Archive  repository.ReportArchiveRepository
}

func loadProfile(w http.ResponseWriter, r *http.Request, store clientstore.Store) *domain.ClientProfile {
	name := httprouter.ParamsFromContext(r.Context()).ByName("name")

	profile, err := store.Get(name)
	if err != nil {
		logrus.WithField("client_name", name).WithError(err).Error("Erro ao buscar perfil de cliente")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar cliente", nil)
		return nil
	}

	if profile == nil {
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
		return nil
	}

	return profile
}

func (s ReportServices) runAnalysis(w http.ResponseWriter, r *http.Request) *domain.AnalysisReport {
	profile := loadProfile(w, r, s.Clients)
	if profile == nil {
		return nil
	}

	report, err := s.Analyzer.Analyze(profile)
	if err != nil {
		logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro na análise do cliente")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao coletar dados da plataforma de anúncios", err.Error())
		return nil
	}

	if s.Archive != nil {
		if err := s.Archive.SaveReport(report); err != nil {
			logrus.WithField("report_id", report.ID).WithError(err).Warn("Erro ao arquivar relatório")
		}
	}

	return report
}

// RunReport executa a análise do período e retorna o relatório completo
func RunReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := services.runAnalysis(w, r)
		if report == nil {
			return
		}

		// Linhas de depuração só entram na resposta quando pedidas
		if r.URL.Query().Get("debug") != "true" {
			report.DebugLines = nil
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GetLatestReport retorna o relatório mais recente arquivado do cliente
func GetLatestReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		if services.Archive == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Arquivo de relatórios não configurado", nil)
			return
		}

		report, err := services.Archive.GetLatestByClient(profile.Name)
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro ao buscar relatório arquivado")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório arquivado para este cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// ListReports retorna o histórico de relatórios arquivados do cliente
func ListReports(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		if services.Archive == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Arquivo de relatórios não configurado", nil)
			return
		}

		reports, err := services.Archive.ListByClient(profile.Name, historyLimit(r))
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro ao listar relatórios arquivados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar relatórios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reports)
	}
}

// historyLimit lê o limite de itens do histórico, com teto para não carregar
// a tabela inteira
func historyLimit(r *http.Request) uint64 {
	limit, err := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit == 0 {
		return 10
	}
	if limit > 50 {
		return 50
	}
	return limit
}

// SendReportResponse devolve o relatório junto com o resultado do envio
type SendReportResponse struct {
	Report   *domain.AnalysisReport `json:"report"`
	Delivery discord.DeliveryResult `json:"delivery"`
}

// SendReport executa a análise e envia o relatório para o webhook do cliente
func SendReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := loadProfile(w, r, services.Clients)
		if profile == nil {
			return
		}

		report, err := services.Analyzer.Analyze(profile)
		if err != nil {
			logrus.WithField("client_name", profile.Name).WithError(err).Error("Erro na análise do cliente")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao coletar dados da plataforma de anúncios", err.Error())
			return
		}

		if services.Archive != nil {
			if err := services.Archive.SaveReport(report); err != nil {
				logrus.WithField("report_id", report.ID).WithError(err).Warn("Erro ao arquivar relatório")
			}
		}

		delivery := services.Notifier.SendReport(profile.DiscordWebhook, report.ReportText)

		report.DebugLines = nil

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SendReportResponse{
			Report:   report,
			Delivery: delivery,
		})
	}
}
