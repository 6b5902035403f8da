package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
)

// serviceCoverageHandler answers the per-service means over the filtered set,
// in schema order. Radar-style consumers close the loop themselves; the first
// element is not duplicated here.
func (api *RestAPI) serviceCoverageHandler(w http.ResponseWriter, r *http.Request) {
	counties, fieldErrors := parseCounties(r.URL.Query())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered := api.DataManager.Table().FilterCounties(counties)
	coverage := buildServiceCoverage(filtered.ServiceMeans())
	response := models.NewListResponse(coverage, countyReferences(filtered))
	api.sendResponse(w, r, response)
}
