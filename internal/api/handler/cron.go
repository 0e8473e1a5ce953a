package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-performance-api/internal/scheduler"
	"github.com/vfg2006/creative-performance-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReportSync = "report-sync"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportSyncService *scheduler.ReportSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReportSync:
			if services.ReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatórios semanais não disponível", nil)
				return
			}
			services.ReportSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", cronType)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "disparado",
			"type":   cronType,
		})
	}
}

// CronStatusResponse é a fotografia do estado das rotinas agendadas
type CronStatusResponse struct {
	ReportSyncRunning     bool       `json:"report_sync_running"`
	ReportSyncStartedAt   *time.Time `json:"report_sync_started_at,omitempty"`
	ReportSyncCompletedAt *time.Time `json:"report_sync_completed_at,omitempty"`
}

// CronStatus retorna o estado atual das rotinas agendadas
func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := CronStatusResponse{}

		if services.ReportSyncService != nil {
			response.ReportSyncRunning = services.ReportSyncService.IsSyncRunning()

			startedAt, completedAt := services.ReportSyncService.GetLastSyncTimes()
			if !startedAt.IsZero() {
				response.ReportSyncStartedAt = &startedAt
			}
			if !completedAt.IsZero() {
				response.ReportSyncCompletedAt = &completedAt
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
