package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-attribution-api/infrastructure/snapshot"
	"github.com/vfg2006/revenue-attribution-api/internal/api/handler/router"
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

func Revenue(store snapshot.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(store),
		},
		{
			Path:    "/last_updated",
			Method:  http.MethodGet,
			Handler: GetLastUpdated(store),
		},
	}
}

func Refresh(service RefreshTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/trigger-update",
			Method:  http.MethodPost,
			Handler: TriggerUpdate(service),
		},
		{
			Path:    "/refresh-status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(service),
		},
	}
}
