package handler

import (
	"net/http"

	"github.com/vfg2006/creative-performance-api/infrastructure/clientstore"
	"github.com/vfg2006/creative-performance-api/internal/api/handler/router"
	"github.com/vfg2006/creative-performance-api/internal/usecases/authenticating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Clients(store clientstore.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(store),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: SaveClient(store),
		},
		{
			Path:    "/v1/clients/:name",
			Method:  http.MethodGet,
			Handler: GetClient(store),
		},
		{
			Path:    "/v1/clients/:name",
			Method:  http.MethodDelete,
			Handler: DeleteClient(store),
		},
	}
}

func Reports(services ReportServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:name/report",
			Method:  http.MethodPost,
			Handler: RunReport(services),
		},
		{
			Path:    "/v1/clients/:name/report",
			Method:  http.MethodGet,
			Handler: GetLatestReport(services),
		},
		{
			Path:    "/v1/clients/:name/report/send",
			Method:  http.MethodPost,
			Handler: SendReport(services),
		},
		{
			Path:    "/v1/clients/:name/reports",
			Method:  http.MethodGet,
			Handler: ListReports(services),
		},
	}
}

func Rules(services RuleServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients/:name/rules/sync",
			Method:  http.MethodPost,
			Handler: SyncRules(services),
		},
		{
			Path:    "/v1/clients/:name/rules/reset",
			Method:  http.MethodPost,
			Handler: ResetRules(services),
		},
		{
			Path:    "/v1/clients/:name/rules/status",
			Method:  http.MethodGet,
			Handler: RulesStatus(services),
		},
		{
			Path:    "/v1/clients/:name/rules/audit",
			Method:  http.MethodGet,
			Handler: RulesAudit(services),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: CronStatus(services),
		},
	}
}
