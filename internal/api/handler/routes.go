package handler

import (
	"net/http"

	"github.com/vfg2006/ad-spend-sync/internal/api/handler/router"
	"github.com/vfg2006/ad-spend-sync/internal/scheduler"
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

func SpendSync(service *scheduler.SpendSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: TriggerSpendSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSpendSyncStatus(service),
		},
	}
}
