package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/dashboard/query.json", validateAPIKey(api, api.queryHandler))
	router.Handler(http.MethodGet, "/api/dashboard/ranking.json", validateAPIKey(api, api.rankingHandler))
	router.Handler(http.MethodGet, "/api/dashboard/rows.json", validateAPIKey(api, api.rowsHandler))
	router.Handler(http.MethodGet, "/api/dashboard/aggregates.json", validateAPIKey(api, api.aggregatesHandler))
	router.Handler(http.MethodGet, "/api/dashboard/service-coverage.json", validateAPIKey(api, api.serviceCoverageHandler))
	router.Handler(http.MethodGet, "/api/dashboard/counties.json", validateAPIKey(api, api.countiesHandler))
	router.Handler(http.MethodGet, "/api/dashboard/metrics.json", validateAPIKey(api, api.metricsHandler))
	router.Handler(http.MethodGet, "/api/dashboard/county/:id", validateAPIKey(api, api.countyHandler))
	router.Handler(http.MethodGet, "/api/dashboard/current-time.json", validateAPIKey(api, api.currentTimeHandler))
}
