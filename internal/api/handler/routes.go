package handler

import (
	"net/http"

	"github.com/vfg2006/shelf-manager-api/internal/api/handler/router"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/ingesting"
	"github.com/vfg2006/shelf-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/shelf-manager-api/pkg/middleware"
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

func Readings(service ingesting.Ingestor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/readings",
			Method:      http.MethodPost,
			Handler:     IngestReading(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/critical-slots",
			Method:      http.MethodGet,
			Handler:     GetCriticalSlots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/lost-revenue/ranking",
			Method:      http.MethodGet,
			Handler:     GetLostRevenueRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func StoreLossRanking(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/ranking/lost-revenue",
			Method:      http.MethodGet,
			Handler:     GetStoreLossRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
