package restapi

import (
	"net/http"

	"afyadash.or.ke/internal/models"
)

// aggregatesHandler answers the KPI view: distinct sub-county count and the
// designated metric means over the filtered set.
func (api *RestAPI) aggregatesHandler(w http.ResponseWriter, r *http.Request) {
	counties, fieldErrors := parseCounties(r.URL.Query())
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filtered := api.DataManager.Table().FilterCounties(counties)
	entry := buildAggregates(filtered.Summary())
	response := models.NewEntryResponse(entry, countyReferences(filtered))
	api.sendResponse(w, r, response)
}
